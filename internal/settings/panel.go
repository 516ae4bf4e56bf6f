package settings

import "github.com/Distortions81/brush-displace/internal/pointer"

// Panel holds the current values and accepts edits from the keyboard panel
// and from the file watcher. It is read by the frame scheduler once per frame.
type Panel struct {
	values  Values
	visible bool
	updates *pointer.Mailbox[Values]
}

// NewPanel starts hidden with v.
func NewPanel(v Values) *Panel {
	return &Panel{values: v.Clamped(), updates: pointer.NewMailbox[Values]()}
}

// Progress and DistortionAmount return the values applied on the frame goroutine.
func (p *Panel) Progress() float64         { return p.values.Progress }
func (p *Panel) DistortionAmount() float64 { return p.values.DistortionAmount }

// Values returns a copy of the current values.
func (p *Panel) Values() Values { return p.values }

// Visible reports whether the panel overlay is shown.
func (p *Panel) Visible() bool { return p.visible }

// Toggle flips panel visibility.
func (p *Panel) Toggle() { p.visible = !p.visible }

// NudgeProgress moves progress by steps increments.
func (p *Panel) NudgeProgress(steps int) {
	p.values.Progress = ProgressRange.Clamp(p.values.Progress + float64(steps)*ProgressRange.Step)
}

// NudgeDistortion moves the distortion amount by steps increments.
func (p *Panel) NudgeDistortion(steps int) {
	p.values.DistortionAmount = DistortionRange.Clamp(p.values.DistortionAmount + float64(steps)*DistortionRange.Step)
}

// Submit queues values from another goroutine. Only the latest submission is
// applied.
func (p *Panel) Submit(v Values) {
	p.updates.Put(v)
}

// Sync applies a pending submission. It must run on the frame goroutine.
func (p *Panel) Sync() bool {
	v, ok := p.updates.Take()
	if !ok {
		return false
	}
	p.values = v.Clamped()
	return true
}
