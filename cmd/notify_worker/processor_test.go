package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/pkg/mailer"
	mailtpl "github.com/oksasatya/home-hero-api/pkg/mailer/templates"
)

type sent struct {
	to, subject, text, html string
	cc                      []string
}

type fakeSender struct {
	err  error
	sent []sent
}

func (f *fakeSender) Send(_ context.Context, to string, cc []string, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sent{to: to, cc: cc, subject: subject, text: text, html: html})
	return nil
}

func newProcessor(s Sender) *processor {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &processor{Sender: s, Logger: logger}
}

func encode(c *qt.C, job mailer.EmailJob) []byte {
	b, err := json.Marshal(job)
	c.Assert(err, qt.IsNil)
	return b
}

func TestHandleRendersTemplateJob(t *testing.T) {
	c := qt.New(t)
	s := &fakeSender{}
	body := encode(c, mailer.EmailJob{
		To:       "u@x.io",
		CC:       []string{"p@x.io"},
		Template: mailtpl.BookingCreated,
		Data:     map[string]any{"BookingID": "b1", "ServiceName": "Plumbing", "Price": 20.0},
	})

	c.Assert(newProcessor(s).Handle(context.Background(), body), qt.Equals, outcomeAck)
	c.Assert(s.sent, qt.HasLen, 1)
	c.Assert(s.sent[0].subject, qt.Equals, "Booking confirmed: Plumbing")
	c.Assert(s.sent[0].cc, qt.DeepEquals, []string{"p@x.io"})
}

func TestHandleRawJob(t *testing.T) {
	c := qt.New(t)
	s := &fakeSender{}
	body := encode(c, mailer.EmailJob{To: "u@x.io", Subject: "hi", Text: "there"})
	c.Assert(newProcessor(s).Handle(context.Background(), body), qt.Equals, outcomeAck)
	c.Assert(s.sent[0].text, qt.Equals, "there")
}

func TestHandleDropsBadJobs(t *testing.T) {
	c := qt.New(t)
	p := newProcessor(&fakeSender{})
	c.Assert(p.Handle(context.Background(), []byte("{")), qt.Equals, outcomeDrop)
	c.Assert(p.Handle(context.Background(), encode(c, mailer.EmailJob{Subject: "x"})), qt.Equals, outcomeDrop)
	c.Assert(p.Handle(context.Background(), encode(c, mailer.EmailJob{To: "u@x.io", Template: "universal"})), qt.Equals, outcomeDrop)
	c.Assert(p.Handle(context.Background(), encode(c, mailer.EmailJob{To: "u@x.io"})), qt.Equals, outcomeDrop)
}

func TestHandleRetriesOnSendFailure(t *testing.T) {
	c := qt.New(t)
	p := newProcessor(&fakeSender{err: errors.New("mailgun down")})
	body := encode(c, mailer.EmailJob{To: "u@x.io", Subject: "hi"})
	c.Assert(p.Handle(context.Background(), body), qt.Equals, outcomeRetry)
}
