//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"github.com/Distortions81/brush-displace/internal/wave"
)

// openCLDecayer runs the wave pool decay step as a kernel. The pool is small,
// so each frame uploads the packed state, runs one work item per slot and
// reads it back.
type openCLDecayer struct {
	context     *cl.Context
	queue       *cl.CommandQueue
	program     *cl.Program
	kernel      *cl.Kernel
	opacityBuf  *cl.MemObject
	scaleBuf    *cl.MemObject
	rotationBuf *cl.MemObject
	visibleBuf  *cl.MemObject
	packed      *wave.Packed
	deviceName  string
}

const decayKernelSource = `__kernel void decay_waves(
    const int count,
    const float rotation_step,
    const float fade,
    const float scale_keep,
    const float scale_growth,
    const float hide_threshold,
    __global float* opacity,
    __global float* scale,
    __global float* rotation,
    __global int* visible)
{
    int i = get_global_id(0);
    if (i >= count || visible[i] == 0) {
        return;
    }
    rotation[i] += rotation_step;
    opacity[i] *= fade;
    scale[i] = scale_keep * scale[i] + scale_growth;
    if (opacity[i] < hide_threshold) {
        visible[i] = 0;
    }
}`

// pickDevice prefers a GPU and falls back to any CPU device.
func pickDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

func newOpenCLDecayer() (*openCLDecayer, error) {
	device, err := pickDevice()
	if err != nil {
		return nil, err
	}
	d := &openCLDecayer{packed: wave.NewPacked(), deviceName: device.Name()}
	fail := func(err error) (*openCLDecayer, error) {
		d.Close()
		return nil, err
	}

	if d.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return fail(fmt.Errorf("creating OpenCL context: %w", err))
	}
	if d.queue, err = d.context.CreateCommandQueue(device, 0); err != nil {
		return fail(fmt.Errorf("creating OpenCL command queue: %w", err))
	}
	if d.program, err = d.context.CreateProgramWithSource([]string{decayKernelSource}); err != nil {
		return fail(fmt.Errorf("creating OpenCL program: %w", err))
	}
	if err := d.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fail(fmt.Errorf("building OpenCL program: %s", string(buildErr)))
		}
		return fail(fmt.Errorf("building OpenCL program: %w", err))
	}
	if d.kernel, err = d.program.CreateKernel("decay_waves"); err != nil {
		return fail(fmt.Errorf("creating decay kernel: %w", err))
	}

	floatBytes := wave.Capacity * int(unsafe.Sizeof(float32(0)))
	intBytes := wave.Capacity * int(unsafe.Sizeof(int32(0)))
	for _, b := range []struct {
		dst  **cl.MemObject
		size int
		name string
	}{
		{&d.opacityBuf, floatBytes, "opacity"},
		{&d.scaleBuf, floatBytes, "scale"},
		{&d.rotationBuf, floatBytes, "rotation"},
		{&d.visibleBuf, intBytes, "visible"},
	} {
		buf, err := d.context.CreateEmptyBuffer(cl.MemReadWrite, b.size)
		if err != nil {
			return fail(fmt.Errorf("allocating %s buffer: %w", b.name, err))
		}
		*b.dst = buf
	}

	if err := d.kernel.SetArgs(
		int32(wave.Capacity),
		float32(wave.RotationStep),
		float32(wave.OpacityFade),
		float32(wave.ScaleKeep),
		float32(wave.ScaleGrowth),
		float32(wave.HideThreshold),
		d.opacityBuf,
		d.scaleBuf,
		d.rotationBuf,
		d.visibleBuf,
	); err != nil {
		return fail(fmt.Errorf("setting kernel arguments: %w", err))
	}
	return d, nil
}

// Decay uploads the pool, runs the kernel and stores the result back.
func (d *openCLDecayer) Decay(p *wave.Pool) error {
	pk := d.packed
	pk.Load(p)
	if _, err := d.queue.EnqueueWriteBufferFloat32(d.opacityBuf, false, 0, pk.Opacity, nil); err != nil {
		return fmt.Errorf("writing opacity buffer: %w", err)
	}
	if _, err := d.queue.EnqueueWriteBufferFloat32(d.scaleBuf, false, 0, pk.Scale, nil); err != nil {
		return fmt.Errorf("writing scale buffer: %w", err)
	}
	if _, err := d.queue.EnqueueWriteBufferFloat32(d.rotationBuf, false, 0, pk.Rotation, nil); err != nil {
		return fmt.Errorf("writing rotation buffer: %w", err)
	}
	visBytes := len(pk.Visible) * int(unsafe.Sizeof(int32(0)))
	if _, err := d.queue.EnqueueWriteBuffer(d.visibleBuf, false, 0, visBytes, unsafe.Pointer(&pk.Visible[0]), nil); err != nil {
		return fmt.Errorf("writing visible buffer: %w", err)
	}
	if _, err := d.queue.EnqueueNDRangeKernel(d.kernel, nil, []int{wave.Capacity}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing decay kernel: %w", err)
	}
	if _, err := d.queue.EnqueueReadBufferFloat32(d.opacityBuf, true, 0, pk.Opacity, nil); err != nil {
		return fmt.Errorf("reading opacity buffer: %w", err)
	}
	if _, err := d.queue.EnqueueReadBufferFloat32(d.scaleBuf, true, 0, pk.Scale, nil); err != nil {
		return fmt.Errorf("reading scale buffer: %w", err)
	}
	if _, err := d.queue.EnqueueReadBufferFloat32(d.rotationBuf, true, 0, pk.Rotation, nil); err != nil {
		return fmt.Errorf("reading rotation buffer: %w", err)
	}
	if _, err := d.queue.EnqueueReadBuffer(d.visibleBuf, true, 0, visBytes, unsafe.Pointer(&pk.Visible[0]), nil); err != nil {
		return fmt.Errorf("reading visible buffer: %w", err)
	}
	pk.Store(p)
	return nil
}

func (d *openCLDecayer) Name() string { return "opencl" }

func (d *openCLDecayer) DeviceName() string { return d.deviceName }

func (d *openCLDecayer) Close() {
	for _, buf := range []**cl.MemObject{&d.visibleBuf, &d.rotationBuf, &d.scaleBuf, &d.opacityBuf} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	if d.kernel != nil {
		d.kernel.Release()
		d.kernel = nil
	}
	if d.program != nil {
		d.program.Release()
		d.program = nil
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.context != nil {
		d.context.Release()
		d.context = nil
	}
}
