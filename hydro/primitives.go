package hydro

import (
	"fmt"
	"strings"
)

type Field uint8

const (
	RestMassDensity Field = iota
	SpatialVelocity
	SpecificInternalEnergy
	Pressure
	MagneticField
)

var fieldNames = []string{
	"RestMassDensity",
	"SpatialVelocity",
	"SpecificInternalEnergy",
	"Pressure",
	"MagneticField",
}

// FieldNameMap accepts both the long names and the short labels used on the
// command line
var FieldNameMap = map[string]Field{
	"restmassdensity":        RestMassDensity,
	"rho":                    RestMassDensity,
	"spatialvelocity":        SpatialVelocity,
	"v":                      SpatialVelocity,
	"specificinternalenergy": SpecificInternalEnergy,
	"eps":                    SpecificInternalEnergy,
	"pressure":               Pressure,
	"p":                      Pressure,
	"magneticfield":          MagneticField,
	"b":                      MagneticField,
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}

// NumComponents is 1 for scalars and 3 for spatial vectors
func (f Field) NumComponents() int {
	switch f {
	case SpatialVelocity, MagneticField:
		return 3
	default:
		return 1
	}
}

// Offset is the index of the field's first component within Components()
func (f Field) Offset() (offset int) {
	for ff := RestMassDensity; ff < f; ff++ {
		offset += ff.NumComponents()
	}
	return
}

func ParseField(name string) (f Field, err error) {
	var ok bool
	if f, ok = FieldNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown field %q", name)
	}
	return
}

const NumComponents = 9

var ComponentLabels = [NumComponents]string{
	"rho", "vx", "vy", "vz", "eps", "p", "Bx", "By", "Bz",
}

// Primitives is a snapshot of the primitive variables at one point and time.
// The same layout carries their time derivatives.
type Primitives struct {
	RestMassDensity        float64
	SpatialVelocity        Vec3
	SpecificInternalEnergy float64
	Pressure               float64
	MagneticField          Vec3
}

func (p Primitives) Components() (c [NumComponents]float64) {
	c[0] = p.RestMassDensity
	copy(c[1:4], p.SpatialVelocity[:])
	c[4] = p.SpecificInternalEnergy
	c[5] = p.Pressure
	copy(c[6:9], p.MagneticField[:])
	return
}

func (p Primitives) Component(f Field, dim int) float64 {
	if dim < 0 || dim >= f.NumComponents() {
		panic(fmt.Errorf("component %d out of range for %s", dim, f))
	}
	return p.Components()[f.Offset()+dim]
}
