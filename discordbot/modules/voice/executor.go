package voice

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// FailureKind classifies a per-member edit failure.
type FailureKind int

const (
	// FailurePermission means the platform rejected the edit for this
	// member.
	FailurePermission FailureKind = iota
	// FailureTransient covers every other platform error. No retry is
	// attempted; the failure is terminal within the batch.
	FailureTransient
)

// Failure records one member the executor could not update.
type Failure struct {
	Member Member
	Kind   FailureKind
	Err    error
}

// Outcome aggregates one batch run. Failures keep roster order
// regardless of completion order.
type Outcome struct {
	Attempted []Member
	Succeeded int
	Failures  []Failure
}

// Editor applies a voice state change to a single member. Implemented
// by the discordgo session provider; tests substitute fakes.
type Editor interface {
	EditVoiceState(guildID, userID string, target Target) error
}

const executorWorkers = 8

// Executor applies a target state to a set of members with bounded
// concurrency. Per-member failures are recorded, never raised; only
// the caller's precondition mistakes surface as errors, and an empty
// member set is a valid call, not a mistake.
type Executor struct {
	editor  Editor
	log     *logrus.Logger
	workers int
}

// NewExecutor provides an executor instance over the given editor.
func NewExecutor(editor Editor, log *logrus.Logger) *Executor {
	return &Executor{
		editor:  editor,
		log:     log,
		workers: executorWorkers,
	}
}

// Execute edits every member toward target and returns the aggregate
// outcome once all attempts have completed.
func (e *Executor) Execute(guildID string, members []Member, target Target) Outcome {
	failures := make([]*Failure, len(members))

	group := &errgroup.Group{}
	group.SetLimit(e.workers)

	for i, m := range members {
		i, m := i, m

		group.Go(func() error {
			err := e.editor.EditVoiceState(guildID, m.ID, target)
			if err == nil {
				return nil
			}

			kind := classify(err)

			switch kind {
			case FailurePermission:
				e.log.WithField("member", m.DisplayName).
					Warn("Cannot update voice state - insufficient permissions")
			default:
				e.log.WithError(err).WithField("member", m.DisplayName).
					Error("Updating voice state")
			}

			failures[i] = &Failure{Member: m, Kind: kind, Err: err}

			return nil
		})
	}

	_ = group.Wait()

	out := Outcome{Attempted: members}

	for _, f := range failures {
		if f == nil {
			out.Succeeded++

			continue
		}

		out.Failures = append(out.Failures, *f)
	}

	return out
}

func classify(err error) FailureKind {
	var rerr *discordgo.RESTError

	if errors.As(err, &rerr) {
		if rerr.Message != nil && rerr.Message.Code == discordgo.ErrCodeMissingPermissions {
			return FailurePermission
		}

		if rerr.Response != nil && rerr.Response.StatusCode == http.StatusForbidden {
			return FailurePermission
		}
	}

	return FailureTransient
}
