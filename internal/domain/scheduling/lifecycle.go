package scheduling

import (
	"github.com/medibook/medibook/internal/platform/auth"
)

// The lifecycle forms a small state machine:
//
//	pending -> confirmed -> completed
//	pending -> cancelled
//	confirmed -> cancelled
//
// completed and cancelled are terminal. Who may drive each edge depends on
// role: confirming and completing are clinic-side actions, cancelling is open
// to the patient who owns the appointment as well.
var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
	},
}

// CanTransition reports whether the state machine has an edge from one
// status to another, ignoring permissions.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// CheckTransition validates a status change for an appointment and the actor
// requesting it. A nil return means the change may proceed.
func CheckTransition(appt *Appointment, to Status, actor auth.Actor) error {
	from := appt.Status
	if !to.Valid() {
		return &InvalidTransitionError{From: from, To: to, Reason: "unknown status"}
	}
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}

	switch to {
	case StatusConfirmed, StatusCompleted:
		if actor.Role != auth.RoleDoctor && actor.Role != auth.RoleAdmin {
			return &InvalidTransitionError{From: from, To: to, Reason: "requires doctor or admin"}
		}
	case StatusCancelled:
		switch actor.Role {
		case auth.RoleDoctor, auth.RoleAdmin:
		case auth.RolePatient:
			if !actor.IsPatient(appt.PatientID) {
				return &InvalidTransitionError{From: from, To: to, Reason: "patients may only cancel their own appointments"}
			}
		default:
			return &InvalidTransitionError{From: from, To: to, Reason: "unknown role"}
		}
	}
	return nil
}

// CanReschedule reports whether the appointment may be moved to a new slot.
// Only live appointments move; terminal ones stay where history put them.
func CanReschedule(appt *Appointment, actor auth.Actor) error {
	if !appt.Status.Active() {
		return &InvalidTransitionError{From: appt.Status, To: StatusPending, Reason: "appointment is no longer active"}
	}
	switch actor.Role {
	case auth.RoleDoctor, auth.RoleAdmin:
		return nil
	case auth.RolePatient:
		if !actor.IsPatient(appt.PatientID) {
			return &InvalidTransitionError{From: appt.Status, To: StatusPending, Reason: "patients may only reschedule their own appointments"}
		}
		return nil
	default:
		return &InvalidTransitionError{From: appt.Status, To: StatusPending, Reason: "unknown role"}
	}
}
