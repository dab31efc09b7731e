// Package worker consumes NutricionistaCadastrado events: each record is
// projected into the search index and, when mail is enabled, greeted by email.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nutricionistas-api/pkg/events"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
	"github.com/oksasatya/nutricionistas-api/pkg/mailer"
)

// ErrPoison marks a message that can never be processed; it must not be requeued.
var ErrPoison = errors.New("poison message")

// Indexer stores the search projection of a record.
type Indexer interface {
	Index(ctx context.Context, ev events.NutricionistaCadastrado) error
}

// ESIndexer indexes events into one Elasticsearch index, keyed by record id.
type ESIndexer struct {
	Client    *elasticsearch.Client
	IndexName string
}

func (i *ESIndexer) Index(ctx context.Context, ev events.NutricionistaCadastrado) error {
	return helpers.IndexDocument(ctx, i.Client, i.IndexName, strconv.FormatInt(ev.ID, 10), ev)
}

// Processor handles one delivery body. Mailer may be nil.
type Processor struct {
	Indexer Indexer
	Mailer  mailer.Sender
	Logger  *logrus.Logger
}

// Handle returns an error wrapping ErrPoison for undecodable bodies and a
// plain error for failures worth retrying.
func (p *Processor) Handle(ctx context.Context, msgType string, body []byte) error {
	if msgType != "" && msgType != events.TypeNutricionistaCadastrado {
		return fmt.Errorf("%w: unexpected type %q", ErrPoison, msgType)
	}
	var ev events.NutricionistaCadastrado
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrPoison, err)
	}
	if ev.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrPoison)
	}

	logger := p.Logger
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	log := logger.WithField("nutricionista_id", ev.ID)

	if p.Indexer != nil {
		if err := p.Indexer.Index(ctx, ev); err != nil {
			return fmt.Errorf("index: %w", err)
		}
		log.Debug("indexed")
	}

	if p.Mailer != nil && ev.Email != "" {
		subject, text, html, err := mailer.RenderBoasVindas(ev)
		if err != nil {
			return fmt.Errorf("%w: render: %v", ErrPoison, err)
		}
		if err := p.Mailer.Send(ctx, ev.Email, subject, text, html); err != nil {
			return fmt.Errorf("send: %w", err)
		}
		log.Debug("welcome email sent")
	}
	return nil
}
