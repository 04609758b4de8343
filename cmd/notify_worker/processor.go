package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/pkg/mailer"
	mailtpl "github.com/oksasatya/home-hero-api/pkg/mailer/templates"
)

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRetry
	outcomeDrop
)

// Sender delivers one rendered message.
type Sender interface {
	Send(ctx context.Context, to string, cc []string, subject, text, html string) error
}

type processor struct {
	Sender Sender
	Logger *logrus.Logger
}

// Handle decodes, renders and sends one job. Malformed jobs are dropped;
// delivery failures are retried.
func (p *processor) Handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		p.Logger.WithError(err).Warn("bad message")
		return outcomeDrop
	}
	if job.To == "" {
		p.Logger.Warn("job without recipient")
		return outcomeDrop
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		if !mailtpl.Known(job.Template) {
			p.Logger.WithField("template", job.Template).Warn("unknown template")
			return outcomeDrop
		}
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			p.Logger.WithError(err).WithField("template", job.Template).Error("render failed")
			return outcomeDrop
		}
	}
	if subject == "" {
		p.Logger.Warn("job without subject")
		return outcomeDrop
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := p.Sender.Send(c, job.To, job.CC, subject, text, html); err != nil {
		p.Logger.WithError(err).WithField("to", job.To).Error("send failed")
		return outcomeRetry
	}
	p.Logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	return outcomeAck
}
