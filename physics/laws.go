package physics

import (
	"fmt"
	"strings"
)

type EOSType uint8

const (
	EOS_IdealGas EOSType = iota
)

type OpacityType uint8

const (
	OPACITY_Kramers OpacityType = iota
	OPACITY_BellLin1994
)

type GradientType uint8

const (
	GRADIENT_Radiative GradientType = iota
)

var (
	EOSNames = map[string]EOSType{
		"ideal":    EOS_IdealGas,
		"idealgas": EOS_IdealGas,
	}
	OpacityNames = map[string]OpacityType{
		"kramers":     OPACITY_Kramers,
		"belllin":     OPACITY_BellLin1994,
		"belllin1994": OPACITY_BellLin1994,
	}
	GradientNames = map[string]GradientType{
		"radiative": GRADIENT_Radiative,
	}
)

// Laws is the physics injected into a solve session
type Laws struct {
	EOS      EOS
	Opacity  Opacity
	Gradient TempGradient
}

func (l Laws) String() string {
	return fmt.Sprintf("EOS: %s, Opacity: %s, Gradient: %s", l.EOS, l.Opacity, l.Gradient)
}

func NewEOS(label string, mu float64) (eos EOS, err error) {
	var (
		et EOSType
		ok bool
	)
	if et, ok = EOSNames[normalize(label)]; !ok {
		err = fmt.Errorf("unable to use equation of state named %q", label)
		return
	}
	if mu <= 0 {
		err = fmt.Errorf("mean molecular weight must be positive, have %v", mu)
		return
	}
	switch et {
	case EOS_IdealGas:
		eos = NewIdealGas(mu)
	}
	return
}

func NewOpacity(label string) (op Opacity, err error) {
	var (
		ot OpacityType
		ok bool
	)
	if ot, ok = OpacityNames[normalize(label)]; !ok {
		err = fmt.Errorf("unable to use opacity law named %q", label)
		return
	}
	switch ot {
	case OPACITY_Kramers:
		op = NewKramers()
	case OPACITY_BellLin1994:
		op = NewBellLin1994()
	}
	return
}

func NewTempGradient(label string) (tg TempGradient, err error) {
	var (
		gt GradientType
		ok bool
	)
	if gt, ok = GradientNames[normalize(label)]; !ok {
		err = fmt.Errorf("unable to use temperature gradient named %q", label)
		return
	}
	switch gt {
	case GRADIENT_Radiative:
		tg = NewRadiative()
	}
	return
}

// NewLaws assembles a physics set by name; an empty gradient name means radiative
func NewLaws(eosLabel, opacityLabel, gradientLabel string, mu float64) (l Laws, err error) {
	if len(gradientLabel) == 0 {
		gradientLabel = "radiative"
	}
	if l.EOS, err = NewEOS(eosLabel, mu); err != nil {
		return
	}
	if l.Opacity, err = NewOpacity(opacityLabel); err != nil {
		return
	}
	l.Gradient, err = NewTempGradient(gradientLabel)
	return
}

func normalize(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, "_", "")
	label = strings.ReplaceAll(label, "-", "")
	label = strings.ReplaceAll(label, " ", "")
	label = strings.ReplaceAll(label, "&", "")
	return label
}
