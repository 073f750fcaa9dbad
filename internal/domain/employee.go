package domain

import (
	"strings"

	"github.com/google/uuid"
)

const mechanicRolePrefix = "MECHANIC_"

// Role is a user role stored as text
type Role string

const (
	RoleMechanicGeneral      Role = "MECHANIC_GENERAL"
	RoleMechanicWheels       Role = "MECHANIC_WHEELS"
	RoleMechanicAC           Role = "MECHANIC_AC"
	RoleMechanicBodywork     Role = "MECHANIC_BODYWORK"
	RoleMechanicPaint        Role = "MECHANIC_PAINT"
	RoleMechanicElectric     Role = "MECHANIC_ELECTRIC"
	RoleMechanicEngine       Role = "MECHANIC_ENGINE"
	RoleMechanicTransmission Role = "MECHANIC_TRANSMISSION"

	RoleReceptionist Role = "RECEPTIONIST"
	RoleGarageOwner  Role = "GARAGE_OWNER"
	RoleAdmin        Role = "ADMIN"
	RoleClient       Role = "CLIENT"
)

// IsMechanic returns true for roles that can be assigned appointments
func (r Role) IsMechanic() bool {
	if !strings.HasPrefix(string(r), mechanicRolePrefix) {
		return false
	}
	return Area(strings.TrimPrefix(string(r), mechanicRolePrefix)).IsValid()
}

// Employee is a garage user that may be assigned appointments
type Employee struct {
	ID        uuid.UUID
	GarageID  uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// CanServe returns true if the employee works at the garage and is qualified for the area
func (e *Employee) CanServe(garageID uuid.UUID, area Area) bool {
	return e.GarageID == garageID && e.Role == area.Role()
}

// FullName returns "First Last"
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// HasEmail compares the employee email case-insensitively
func (e *Employee) HasEmail(email string) bool {
	return e.Email != "" && equalFold(e.Email, email)
}
