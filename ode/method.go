package ode

import (
	"fmt"
	"strings"
)

type Method uint8

const (
	DoPri5     Method = iota // Dormand-Prince 5(4)
	Fehlberg4                // Fehlberg 4(5)
	Merson4                  // Merson 4("5")
	Zonneveld4               // Zonneveld 4(3)
	MoEuler                  // Modified Euler 2(1)
)

var (
	MethodNames = map[string]Method{
		"dopri5":     DoPri5,
		"fehlberg4":  Fehlberg4,
		"merson4":    Merson4,
		"zonneveld4": Zonneveld4,
		"moeuler":    MoEuler,
	}
	MethodPrintNames = []string{
		"DoPri5 (Dormand-Prince 5(4))",
		"Fehlberg4 (Fehlberg 4(5))",
		"Merson4 (Merson 4(5))",
		"Zonneveld4 (Zonneveld 4(3))",
		"MoEuler (Modified Euler 2(1))",
	}
	solverNames = []string{"dopri5", "fehlberg4", "merson4", "zonneveld4", "moeuler"}
)

func (m Method) Print() (txt string) {
	txt = MethodPrintNames[m]
	return
}

func (m Method) String() string { return m.Print() }

// solverName is the key of the method in the gosl solver database
func (m Method) solverName() string { return solverNames[m] }

func NewMethod(label string) (m Method, err error) {
	var (
		ok bool
	)
	if m, ok = MethodNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use integration method named %s", label)
	}
	return
}
