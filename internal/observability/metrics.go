package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued counts access tokens issued at login.
	TokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soapbox_tokens_issued_total",
		Help: "Total number of access tokens issued",
	})

	// VotesCast counts successful vote insertions.
	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soapbox_votes_cast_total",
		Help: "Total number of votes cast",
	})

	// VotesRemoved counts successful vote removals.
	VotesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soapbox_votes_removed_total",
		Help: "Total number of votes removed",
	})

	// VoteConflicts counts rejected duplicate votes.
	VoteConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soapbox_vote_conflicts_total",
		Help: "Total number of duplicate votes rejected",
	})
)
