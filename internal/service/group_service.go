package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

// GroupService manages groups and their membership sets.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// GroupInput carries the caller-editable group fields. The owner is always
// kept in the membership set regardless of MemberIDs.
type GroupInput struct {
	Title       string  `json:"title" validate:"required,min=3,max=50"`
	Description string  `json:"description" validate:"required,min=3,max=100"`
	MemberIDs   []int64 `json:"memberIds" validate:"omitempty,unique,dive,gt=0"`
}

// Create creates a group owned by ownerID. The owner is added to the
// membership set if the input omits them.
func (s *GroupService) Create(ctx context.Context, ownerID int64, in GroupInput) (*models.Group, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	memberIDs := slices.Clone(in.MemberIDs)
	if !slices.Contains(memberIDs, ownerID) {
		memberIDs = append(memberIDs, ownerID)
	}
	for _, userID := range memberIDs {
		if _, err := s.store.GetUserByID(ctx, userID); err != nil {
			return nil, err
		}
	}

	group := &models.Group{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		MemberIDs:   memberIDs,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("group creation failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	slog.Info("group created", "group_id", group.ID, "owner_id", ownerID, "members", len(memberIDs))
	return group, nil
}

// Get retrieves a group by id.
func (s *GroupService) Get(ctx context.Context, id int64) (*models.Group, error) {
	return s.store.GetGroup(ctx, id)
}

// ListForUser retrieves all groups the user is a member of.
func (s *GroupService) ListForUser(ctx context.Context, userID int64) ([]*models.Group, error) {
	return s.store.ListGroupsByMember(ctx, userID)
}

// Members retrieves the group's current membership with display names.
func (s *GroupService) Members(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.GetGroupMembers(ctx, groupID)
}

// Update rewrites a group's title, description and membership set.
//
// Membership is reconciled as a set difference against the current members.
// Removing a member who appears as payer or beneficiary in any split row of
// the group is rejected with a ConflictError; the owner can never be removed.
func (s *GroupService) Update(ctx context.Context, callerID, groupID int64, in GroupInput) (*models.Group, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	existing, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, apperr.Conflictf("only the group owner can update the group")
	}

	memberIDs := slices.Clone(in.MemberIDs)
	if !slices.Contains(memberIDs, existing.OwnerID) {
		memberIDs = append(memberIDs, existing.OwnerID)
	}
	for _, userID := range memberIDs {
		if _, err := s.store.GetUserByID(ctx, userID); err != nil {
			return nil, err
		}
	}

	for _, userID := range existing.MemberIDs {
		if slices.Contains(memberIDs, userID) {
			continue
		}
		active, err := s.store.HasSplitActivity(ctx, groupID, userID)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, apperr.Conflictf("member %d has split-expense activity and cannot be removed", userID)
		}
	}

	group := &models.Group{
		ID:          groupID,
		OwnerID:     existing.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   existing.CreatedAt,
		MemberIDs:   memberIDs,
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("group update failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("group updated", "group_id", groupID, "members", len(memberIDs))
	return s.store.GetGroup(ctx, groupID)
}

// Delete removes a group. Groups with split rows cannot be deleted.
func (s *GroupService) Delete(ctx context.Context, callerID, groupID int64) error {
	existing, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if existing.OwnerID != callerID {
		return apperr.Conflictf("only the group owner can delete the group")
	}

	hasSplits, err := s.store.GroupHasSplits(ctx, groupID)
	if err != nil {
		return err
	}
	if hasSplits {
		return apperr.Conflictf("group has split-expense records and cannot be deleted")
	}

	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		return err
	}
	slog.Info("group deleted", "group_id", groupID)
	return nil
}
