//go:build !opencl

package main

import (
	"errors"

	"github.com/Distortions81/brush-displace/internal/wave"
)

var errOpenCLDisabled = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type openCLDecayer struct{}

func newOpenCLDecayer() (*openCLDecayer, error) {
	return nil, errOpenCLDisabled
}

func (d *openCLDecayer) Decay(*wave.Pool) error { return errOpenCLDisabled }

func (d *openCLDecayer) Name() string { return "opencl" }

func (d *openCLDecayer) DeviceName() string { return "" }

func (d *openCLDecayer) Close() {}
