package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/medibook/medibook/internal/platform/db"
	"github.com/medibook/medibook/internal/platform/validation"
)

type mockDoctorRepo struct {
	doctors map[int64]*Doctor
	nextID  int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: map[int64]*Doctor{}, nextID: 1}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = m.nextID
	m.nextID++
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id int64) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return d, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return db.ErrNotFound
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.doctors[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, limit, offset int) ([]*Doctor, int, error) {
	items := []*Doctor{}
	for _, d := range m.doctors {
		items = append(items, d)
	}
	return items, len(items), nil
}

func (m *mockDoctorRepo) SearchBySpecialization(_ context.Context, spec string, limit, offset int) ([]*Doctor, int, error) {
	items := []*Doctor{}
	for _, d := range m.doctors {
		if d.Specialization == spec {
			items = append(items, d)
		}
	}
	return items, len(items), nil
}

type mockPatientRepo struct {
	patients map[int64]*Patient
	nextID   int64
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: map[int64]*Patient{}, nextID: 1}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	p.ID = m.nextID
	m.nextID++
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return db.ErrNotFound
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.patients[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	items := []*Patient{}
	for _, p := range m.patients {
		items = append(items, p)
	}
	return items, len(items), nil
}

type mockCounter struct {
	doctorActive  map[int64]int
	patientActive map[int64]int
}

func newMockCounter() *mockCounter {
	return &mockCounter{doctorActive: map[int64]int{}, patientActive: map[int64]int{}}
}

func (m *mockCounter) CountActiveForDoctor(_ context.Context, id int64) (int, error) {
	return m.doctorActive[id], nil
}

func (m *mockCounter) CountActiveForPatient(_ context.Context, id int64) (int, error) {
	return m.patientActive[id], nil
}

func newTestService() (*Service, *mockDoctorRepo, *mockPatientRepo, *mockCounter) {
	doctors := newMockDoctorRepo()
	patients := newMockPatientRepo()
	counter := newMockCounter()
	return NewService(doctors, patients, counter), doctors, patients, counter
}

func TestCreateDoctor_DefaultsSlotMinutes(t *testing.T) {
	svc, _, _, _ := newTestService()

	d := &Doctor{FirstName: "Alice", LastName: "Smith", Specialization: "Cardiology"}
	if err := svc.CreateDoctor(context.Background(), d); err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	if d.SlotMinutes != 30 {
		t.Errorf("expected slot minutes default 30, got %d", d.SlotMinutes)
	}
	if d.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestCreateDoctor_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()

	tests := []struct {
		name   string
		doctor *Doctor
	}{
		{"missing name", &Doctor{Specialization: "Cardiology"}},
		{"missing specialization", &Doctor{FirstName: "Alice", LastName: "Smith"}},
		{"bad slot minutes", &Doctor{FirstName: "Alice", LastName: "Smith", Specialization: "Cardiology", SlotMinutes: 45}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateDoctor(context.Background(), tt.doctor)
			if !validation.IsError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDeleteDoctor_RefusedWithActiveAppointments(t *testing.T) {
	svc, doctors, _, counter := newTestService()

	d := &Doctor{FirstName: "Alice", LastName: "Smith", Specialization: "Cardiology"}
	if err := svc.CreateDoctor(context.Background(), d); err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	counter.doctorActive[d.ID] = 2

	err := svc.DeleteDoctor(context.Background(), d.ID)
	if !errors.Is(err, ErrHasActiveAppointments) {
		t.Fatalf("expected ErrHasActiveAppointments, got %v", err)
	}
	if _, ok := doctors.doctors[d.ID]; !ok {
		t.Error("doctor should not have been deleted")
	}

	counter.doctorActive[d.ID] = 0
	if err := svc.DeleteDoctor(context.Background(), d.ID); err != nil {
		t.Fatalf("DeleteDoctor after appointments resolved: %v", err)
	}
}

func TestDeletePatient_RefusedWithActiveAppointments(t *testing.T) {
	svc, _, patients, counter := newTestService()

	p := &Patient{FirstName: "Bob", LastName: "Jones"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	counter.patientActive[p.ID] = 1

	err := svc.DeletePatient(context.Background(), p.ID)
	if !errors.Is(err, ErrHasActiveAppointments) {
		t.Fatalf("expected ErrHasActiveAppointments, got %v", err)
	}
	if _, ok := patients.patients[p.ID]; !ok {
		t.Error("patient should not have been deleted")
	}
}

func TestCreatePatient_RequiresName(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.CreatePatient(context.Background(), &Patient{FirstName: "Bob"})
	if !validation.IsError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGetDoctor_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetDoctor(context.Background(), 99)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
