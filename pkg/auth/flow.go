package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Step identifies the current sign-in step
type Step int

const (
	StepPhone Step = iota
	StepCode
	StepProfile
	StepComplete
)

// String returns the string representation of the step
func (s Step) String() string {
	switch s {
	case StepPhone:
		return "Phone"
	case StepCode:
		return "Code"
	case StepProfile:
		return "Profile"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// CodeLength is the number of characters a verification code must have
const CodeLength = 4

var (
	// ErrBusy is returned when a submit arrives while a previous one is still in flight
	ErrBusy = errors.New("a request is already in flight")
	// ErrEmptyPhone is returned for a phone submit with an empty phone draft
	ErrEmptyPhone = errors.New("phone number is empty")
	// ErrCodeLength is returned for a code submit with a draft that isn't exactly CodeLength characters
	ErrCodeLength = errors.New("verification code must be 4 characters")
	// ErrInvalidCode is returned when the verifier rejects the submitted code
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrEmptyName is returned for a profile submit with an empty name draft
	ErrEmptyName = errors.New("display name is empty")
	// ErrWrongStep is returned when an operation doesn't apply to the current step
	ErrWrongStep = errors.New("operation not valid for current step")
)

// Session is the authenticated identity produced by a completed flow
type Session struct {
	Phone         string
	Name          string
	Authenticated bool
}

// Verifier abstracts the code dispatch/check round-trips so a real transport
// can replace the simulated one without changing the flow's shape.
type Verifier interface {
	// SendCode dispatches a verification code to the given phone number
	SendCode(ctx context.Context, phone string) error
	// CheckCode reports whether the submitted code is the one dispatched
	CheckCode(ctx context.Context, phone, code string) (bool, error)
}

// StaticVerifier accepts a single fixed code after a simulated delay.
// It stands in for the SMS gateway this build does not have.
type StaticVerifier struct {
	AcceptedCode  string
	DispatchDelay time.Duration
	VerifyDelay   time.Duration
}

// SendCode pretends to dispatch a code, waiting out the simulated latency
func (v StaticVerifier) SendCode(ctx context.Context, phone string) error {
	select {
	case <-time.After(v.DispatchDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CheckCode compares against the accepted code after the simulated latency
func (v StaticVerifier) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	select {
	case <-time.After(v.VerifyDelay):
		return code == v.AcceptedCode, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Flow is the three-step sign-in state machine. It is purely synchronous;
// the owning layer runs the Verifier between the Begin/Complete pairs and
// the loading flag guards against double submission in the meantime.
type Flow struct {
	step    Step
	phone   string
	code    string
	name    string
	loading bool
}

// NewFlow returns a flow at the phone step with empty drafts
func NewFlow() *Flow {
	return &Flow{step: StepPhone}
}

// Step returns the current step
func (f *Flow) Step() Step { return f.step }

// Loading reports whether a simulated request is in flight
func (f *Flow) Loading() bool { return f.loading }

// Phone returns the phone draft
func (f *Flow) Phone() string { return f.phone }

// Code returns the code draft
func (f *Flow) Code() string { return f.code }

// Name returns the name draft
func (f *Flow) Name() string { return f.name }

// SetPhone replaces the phone draft
func (f *Flow) SetPhone(phone string) { f.phone = strings.TrimSpace(phone) }

// SetCode replaces the code draft, truncated to CodeLength characters
func (f *Flow) SetCode(code string) {
	if len(code) > CodeLength {
		code = code[:CodeLength]
	}
	f.code = code
}

// SetName replaces the name draft
func (f *Flow) SetName(name string) { f.name = strings.TrimSpace(name) }

// BeginPhoneSubmit validates the phone draft and marks the code dispatch as
// in flight. The caller runs Verifier.SendCode and then CompletePhoneSubmit.
func (f *Flow) BeginPhoneSubmit() error {
	if f.step != StepPhone {
		return ErrWrongStep
	}
	if f.loading {
		return ErrBusy
	}
	if f.phone == "" {
		return ErrEmptyPhone
	}
	f.loading = true
	return nil
}

// CompletePhoneSubmit finishes the dispatch and advances to the code step
func (f *Flow) CompletePhoneSubmit() {
	if f.step != StepPhone || !f.loading {
		return
	}
	f.loading = false
	f.step = StepCode
}

// BeginCodeSubmit validates the code draft and marks the check as in flight.
// The caller runs Verifier.CheckCode and then CompleteCodeSubmit.
func (f *Flow) BeginCodeSubmit() error {
	if f.step != StepCode {
		return ErrWrongStep
	}
	if f.loading {
		return ErrBusy
	}
	if len(f.code) != CodeLength {
		return ErrCodeLength
	}
	f.loading = true
	return nil
}

// CompleteCodeSubmit finishes the check. A match advances to the profile
// step; a mismatch stays at the code step and returns ErrInvalidCode so the
// caller can surface it. The code draft is kept either way so the user can
// see what they typed.
func (f *Flow) CompleteCodeSubmit(ok bool) error {
	if f.step != StepCode || !f.loading {
		return ErrWrongStep
	}
	f.loading = false
	if !ok {
		return ErrInvalidCode
	}
	f.step = StepProfile
	return nil
}

// BeginResend marks a fresh code dispatch as in flight from the code step
func (f *Flow) BeginResend() error {
	if f.step != StepCode {
		return ErrWrongStep
	}
	if f.loading {
		return ErrBusy
	}
	f.loading = true
	return nil
}

// CompleteResend finishes a resend dispatch; the step stays at code
func (f *Flow) CompleteResend() {
	if f.step != StepCode || !f.loading {
		return
	}
	f.loading = false
}

// AbortSubmit clears the in-flight flag without advancing, for when the
// dispatch or check itself fails rather than the code being wrong
func (f *Flow) AbortSubmit() {
	f.loading = false
}

// Back returns from the code step to the phone step, discarding the code
// draft. It is refused while a request is in flight.
func (f *Flow) Back() error {
	if f.step != StepCode {
		return ErrWrongStep
	}
	if f.loading {
		return ErrBusy
	}
	f.code = ""
	f.step = StepPhone
	return nil
}

// SubmitProfile validates the name draft and completes the flow, returning
// the finalized session
func (f *Flow) SubmitProfile() (Session, error) {
	if f.step != StepProfile {
		return Session{}, ErrWrongStep
	}
	if f.name == "" {
		return Session{}, ErrEmptyName
	}
	f.step = StepComplete
	return Session{Phone: f.phone, Name: f.name, Authenticated: true}, nil
}
