package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/vertstruct/InputParameters"
	"github.com/notargets/vertstruct/sweep"
)

func TestRunSolve(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Mass: 10
Alpha: 0.01
RadiusRg: 400
Mdot: 1.e+17
Opacity: Kramers
ProfilePoints: 21
`)
	var ip InputParameters.InputParameters
	if err = ip.Parse(fileInput); err != nil {
		panic(err)
	}
	var buf bytes.Buffer
	cs, err := RunSolve(&ip, &buf)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.02887, cs.Z0r, 1e-3)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 21+2)
	assert.True(t, strings.HasPrefix(lines[0], "# z0/r"))
	// Surface row: t = 0, S = 0, Q = 1, z = z0
	first := strings.Fields(lines[2])
	require.Len(t, first, 9)
	assert.Equal(t, "0.000000", first[0])
	assert.Equal(t, "1.00000000e+00", first[3])
	last := strings.Fields(lines[len(lines)-1])
	assert.Equal(t, "1.000000", last[0])
	assert.Equal(t, "0.00000000e+00", last[5])
}

func TestRunSCurve(t *testing.T) {
	fileInput := []byte(`
Mass: 1.5
Alpha: 0.3
Radius: 7.e+10
Opacity: BellLin1994
Sweep:
  TeffMin: 8.e+3
  TeffMax: 1.2e+4
  NPoints: 3
  Workers: 2
`)
	var ip InputParameters.InputParameters
	require.NoError(t, ip.Parse(fileInput))
	var buf bytes.Buffer
	points, err := RunSCurve(context.Background(), &ip, &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, sweep.Failed(points))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3+2)
	assert.Len(t, strings.Fields(lines[2]), 4)

	// A radial sweep needs Mdot
	_, err = RunRadial(context.Background(), &ip, &buf)
	assert.Error(t, err)
}

func TestWritePoints(t *testing.T) {
	var buf bytes.Buffer
	points := []sweep.Point{{Index: 0, Err: errors.New("no bracket")}}
	require.NoError(t, writePoints(&buf, points, func(p sweep.Point) []float64 { return nil }))
	assert.Equal(t, "# point 0 failed: no bracket\n", buf.String())
}

func TestStartProfile(t *testing.T) {
	p, err := startProfile("")
	assert.NoError(t, err)
	assert.Nil(t, p)
	_, err = startProfile("gpu")
	assert.Error(t, err)
}

func TestWithOutput(t *testing.T) {
	var (
		dir    = t.TempDir()
		name   = filepath.Join(dir, "profile.dat")
		errBad = errors.New("no root")
	)
	err := withOutput(name, func(w io.Writer) (err error) {
		_, err = io.WriteString(w, "# header\n")
		return
	})
	require.NoError(t, err)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "# header\n", string(data))

	// The write error wins and what was written before it is flushed by the close
	err = withOutput(name, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial\n")
		return errBad
	})
	assert.ErrorIs(t, err, errBad)
	data, err = os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "partial\n", string(data))

	called := false
	err = withOutput(filepath.Join(dir, "missing", "profile.dat"), func(w io.Writer) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
