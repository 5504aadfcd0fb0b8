package ack

import (
	"errors"
	"fmt"
	"time"

	"github.com/hl7bridge/hl7v2/message"
	"github.com/hl7bridge/hl7v2/segir"
	"github.com/hl7bridge/hl7v2/value"
)

// Errors returned by the ACK builder.
var (
	// ErrMissingControlID indicates the original message has no control ID (MSH-10).
	ErrMissingControlID = errors.New("original message missing control ID (MSH-10)")

	// ErrMissingMSH indicates the original message has no MSH segment.
	ErrMissingMSH = errors.New("original message missing MSH segment")

	// ErrInvalidACKCode indicates an invalid acknowledgment code was provided.
	ErrInvalidACKCode = errors.New("invalid acknowledgment code")
)

// Builder creates HL7 acknowledgment messages from original messages.
// It handles the construction of MSH, MSA, and optional ERR segments.
type Builder interface {
	// Accept creates an acceptance ACK (AA) for the original message.
	Accept(original message.Message) (message.Message, error)

	// Reject creates a rejection ACK (AR) for the original message, with
	// an optional text reason placed in MSA-3.
	Reject(original message.Message, reason string) (message.Message, error)

	// Error creates an error ACK (AE) for the original message, carrying
	// err's text in MSA-3 and ERR-7.
	Error(original message.Message, err error) (message.Message, error)

	// Custom creates an ACK with fully customized acknowledgment data.
	Custom(original message.Message, ack ACK) (message.Message, error)
}

// builder is the concrete implementation of Builder.
type builder struct {
	timeFunc      func() time.Time
	controlIDFunc func() string
}

// Option configures a Builder.
type Option func(*builder)

// WithTimeFunc sets a custom time function, for deterministic tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(b *builder) { b.timeFunc = fn }
}

// WithControlIDFunc sets a custom control ID generator.
func WithControlIDFunc(fn func() string) Option {
	return func(b *builder) { b.controlIDFunc = fn }
}

// NewBuilder creates a new ACK Builder with the given options.
func NewBuilder(opts ...Option) Builder {
	b := &builder{timeFunc: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	if b.controlIDFunc == nil {
		b.controlIDFunc = func() string {
			return fmt.Sprintf("ACK%d", b.timeFunc().UnixNano())
		}
	}
	return b
}

func (b *builder) Accept(original message.Message) (message.Message, error) {
	controlID, err := originalControlID(original)
	if err != nil {
		return message.Message{}, err
	}
	return b.Custom(original, NewAcceptACK(controlID))
}

func (b *builder) Reject(original message.Message, reason string) (message.Message, error) {
	controlID, err := originalControlID(original)
	if err != nil {
		return message.Message{}, err
	}
	return b.Custom(original, NewRejectACK(controlID, reason))
}

func (b *builder) Error(original message.Message, cause error) (message.Message, error) {
	controlID, err := originalControlID(original)
	if err != nil {
		return message.Message{}, err
	}
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return b.Custom(original, NewErrorACK(controlID, "207", msg)) // 207 = Application internal error
}

func (b *builder) Custom(original message.Message, ack ACK) (message.Message, error) {
	if !ack.Code.IsValid() {
		return message.Message{}, fmt.Errorf("%w: %s", ErrInvalidACKCode, ack.Code)
	}

	originalMSH, ok := original.Segment("MSH", 0)
	if !ok {
		return message.Message{}, ErrMissingMSH
	}

	segs := []message.Segment{
		b.buildMSH(originalMSH, ack),
		b.buildMSA(ack),
	}
	if ack.NeedsERRSegment() {
		segs = append(segs, b.buildERR(ack))
	}

	return message.New(segs), nil
}

// buildMSH swaps sending/receiving application and facility from the
// original message and stamps the ACK's own timestamp and control ID.
func (b *builder) buildMSH(original message.Segment, _ ACK) message.Segment {
	sendingApp := first(original.Values["SendingApplication"])
	sendingFacility := first(original.Values["SendingFacility"])
	receivingApp := first(original.Values["ReceivingApplication"])
	receivingFacility := first(original.Values["ReceivingFacility"])
	processingID := first(original.Values["ProcessingID"])
	versionID := first(original.Values["VersionID"])
	triggerEvent := first(original.Values["TriggerEvent"])

	values := segir.Values{
		"SendingApplication":   one(receivingApp),
		"SendingFacility":      one(receivingFacility),
		"ReceivingApplication": one(sendingApp),
		"ReceivingFacility":    one(sendingFacility),
		"DateTime":             one(value.Value{Raw: b.timeFunc().Format("20060102150405")}),
		"MessageCode":          one(value.Value{Raw: "ACK"}),
		"MessageControlID":     one(value.Value{Raw: b.controlIDFunc()}),
		"ProcessingID":         one(processingID),
		"VersionID":            one(versionID),
	}
	if triggerEvent.Raw != "" {
		values["TriggerEvent"] = one(triggerEvent)
	}

	return message.Segment{ID: "MSH", Values: values}
}

func (b *builder) buildMSA(ack ACK) message.Segment {
	values := segir.Values{
		"AcknowledgmentCode": one(value.Value{Raw: string(ack.Code)}),
		"MessageControlID":   one(value.Value{Raw: ack.ControlID}),
	}
	if ack.TextMessage != "" {
		values["TextMessage"] = one(value.Value{Raw: ack.TextMessage})
	}
	return message.Segment{ID: "MSA", Values: values}
}

func (b *builder) buildERR(ack ACK) message.Segment {
	values := segir.Values{}
	if ack.ErrorLocation != "" {
		values["ErrorLocation"] = one(value.Value{Raw: ack.ErrorLocation})
	}
	if ack.ErrorCode != "" {
		values["HL7ErrorCode"] = one(value.Value{Raw: ack.ErrorCode})
	}
	if ack.Severity != "" {
		values["Severity"] = one(value.Value{Raw: ack.Severity})
	}
	if ack.ErrorMessage != "" {
		values["DiagnosticInformation"] = one(value.Value{Raw: ack.ErrorMessage})
	}
	return message.Segment{ID: "ERR", Values: values}
}

func originalControlID(original message.Message) (string, error) {
	msh, ok := original.Segment("MSH", 0)
	if !ok {
		return "", ErrMissingMSH
	}
	controlID := first(msh.Values["MessageControlID"]).Raw
	if controlID == "" {
		return "", ErrMissingControlID
	}
	return controlID, nil
}

func first(vals []value.Value) value.Value {
	if len(vals) == 0 {
		return value.Empty()
	}
	return vals[0]
}

func one(v value.Value) []value.Value { return []value.Value{v} }
