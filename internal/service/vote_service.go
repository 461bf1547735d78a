package service

import (
	"context"
	"fmt"

	"soapbox/internal/models"
	"soapbox/internal/observability"
	"soapbox/internal/repository"
)

// Vote directions. A vote row either exists or it does not; the direction
// flag selects the transition, it is not stored.
const (
	DirRemove = 0
	DirAdd    = 1
)

// VoteService toggles the (post, user) vote row.
type VoteService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
}

func NewVoteService(postRepo repository.PostRepository, voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{postRepo: postRepo, voteRepo: voteRepo}
}

// Cast applies one transition of the two-state toggle:
//
//	dir=1, unvoted -> voted    (insert)
//	dir=1, voted   -> conflict
//	dir=0, voted   -> unvoted  (delete)
//	dir=0, unvoted -> not found
//
// The target post must exist. Each call is a single check-then-act against
// the store; a lost insert race surfaces as the same conflict via the
// composite key.
func (s *VoteService) Cast(ctx context.Context, callerID, postID uint, dir int) (string, error) {
	if dir != DirRemove && dir != DirAdd {
		return "", models.NewValidationError("dir must be 0 or 1")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return "", err
	}

	existing, err := s.voteRepo.Get(ctx, postID, callerID)
	if err != nil {
		return "", err
	}

	if dir == DirAdd {
		if existing != nil {
			observability.VoteConflicts.Inc()
			return "", models.NewConflictError(fmt.Sprintf("user %d has already voted post %d", callerID, postID))
		}
		if err := s.voteRepo.Create(ctx, &models.Vote{PostID: postID, UserID: callerID}); err != nil {
			return "", err
		}
		observability.VotesCast.Inc()
		return fmt.Sprintf("user %d has successfully voted post %d", callerID, postID), nil
	}

	if existing == nil {
		return "", models.NewNotFoundError(fmt.Sprintf("user %d has not voted post %d", callerID, postID))
	}
	if err := s.voteRepo.Delete(ctx, postID, callerID); err != nil {
		return "", err
	}
	observability.VotesRemoved.Inc()
	return fmt.Sprintf("user %d has successfully unvoted post %d", callerID, postID), nil
}
