package domain

import (
	"errors"
	"strings"
)

var ErrUnknownArea = errors.New("domain: unknown service area")

// Area is the kind of work an appointment requires
type Area string

const (
	AreaGeneral      Area = "GENERAL"
	AreaWheels       Area = "WHEELS"
	AreaAC           Area = "AC"
	AreaBodywork     Area = "BODYWORK"
	AreaPaint        Area = "PAINT"
	AreaElectric     Area = "ELECTRIC"
	AreaEngine       Area = "ENGINE"
	AreaTransmission Area = "TRANSMISSION"
)

// Areas lists every supported area
var Areas = []Area{
	AreaGeneral,
	AreaWheels,
	AreaAC,
	AreaBodywork,
	AreaPaint,
	AreaElectric,
	AreaEngine,
	AreaTransmission,
}

// ParseArea accepts the bare area name or its mechanic role spelling, in any case
func ParseArea(s string) (Area, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, mechanicRolePrefix)

	area := Area(name)
	if !area.IsValid() {
		return "", ErrUnknownArea
	}
	return area, nil
}

// IsValid reports whether the area belongs to the closed set
func (a Area) IsValid() bool {
	for _, known := range Areas {
		if a == known {
			return true
		}
	}
	return false
}

// Role returns the employee role qualified for the area
func (a Area) Role() Role {
	return Role(mechanicRolePrefix + string(a))
}
