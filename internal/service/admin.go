package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medinabot/internal/domain"
	"medinabot/internal/keylock"
	"medinabot/internal/locale"
	"medinabot/internal/metrics"
	"medinabot/internal/repository"

	"go.uber.org/zap"
)

const recentActivityInDetail = 3

// AdminService is the admin workflow engine.
//
// Each operator has at most one pending action. Every new admin action
// replaces whatever was pending for that operator without running it
// (last write wins). All operations of one operator are serialized by a
// per-operator lock; operations of non-admins are ignored silently.
type AdminService struct {
	sessions repository.SessionRepository
	pending  repository.PendingRepository
	activity *ActivityService
	catalog  *locale.Catalog
	locks    *keylock.Locker
	logger   *zap.Logger
	now      func() time.Time
}

// NewAdminService creates a new admin workflow engine
func NewAdminService(
	sessions repository.SessionRepository,
	pending repository.PendingRepository,
	activity *ActivityService,
	catalog *locale.Catalog,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		sessions: sessions,
		pending:  pending,
		activity: activity,
		catalog:  catalog,
		locks:    keylock.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Pending returns the operator's pending action, if any
func (s *AdminService) Pending(operatorID int64) (domain.PendingAction, bool) {
	return s.pending.Get(operatorID)
}

// authorize returns the operator's session when it is an admin.
// A non-admin never keeps a pending entry.
func (s *AdminService) authorize(operatorID int64, action string) (domain.Session, bool) {
	op, ok := s.sessions.Get(operatorID)
	if ok && op.IsAdmin() {
		return op, true
	}

	s.pending.Clear(operatorID)
	metrics.IgnoredMessagesTotal.WithLabelValues("unauthorized").Inc()
	s.logger.Debug("Ignoring admin action from non-admin",
		zap.Int64("user_id", operatorID),
		zap.String("action", action),
	)
	return domain.Session{}, false
}

// begin locks the operator, authorizes and discards any pending action
func (s *AdminService) begin(operatorID int64, action string) (domain.Session, func(), bool) {
	unlock := s.locks.Lock(operatorID)
	op, ok := s.authorize(operatorID, action)
	if !ok {
		unlock()
		return domain.Session{}, nil, false
	}

	if prev, had := s.pending.Get(operatorID); had {
		s.logger.Info("Discarding pending admin action",
			zap.Int64("operator_id", operatorID),
			zap.String("pending", prev.Kind()),
			zap.String("new_action", action),
		)
	}
	s.pending.Clear(operatorID)
	metrics.AdminActionsTotal.WithLabelValues(action).Inc()
	return op, unlock, true
}

func (s *AdminService) texts(op domain.Session) locale.Texts {
	return s.catalog.For(op.Language).Texts
}

func textReply(text string) *domain.Reply {
	return &domain.Reply{Text: text}
}

// OpenPanel shows the admin keyboard
func (s *AdminService) OpenPanel(operatorID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "open_panel")
	if !ok {
		return nil
	}
	defer unlock()

	return &domain.Reply{
		Text:     s.texts(op).AdminPanel,
		Keyboard: adminPanelMenu(s.catalog, op.Language),
	}
}

// ListUsers shows every known user as a detail button. Read-only.
func (s *AdminService) ListUsers(operatorID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "list_users")
	if !ok {
		return nil
	}
	defer unlock()

	users := s.sessions.List()
	if len(users) == 0 {
		return textReply(s.texts(op).NoUsers)
	}
	return &domain.Reply{
		Text:   s.texts(op).ChooseUser,
		Inline: userButtons(users),
	}
}

// Detail shows a target's record with its follow-up actions. Read-only.
func (s *AdminService) Detail(operatorID, targetID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "detail")
	if !ok {
		return nil
	}
	defer unlock()

	return s.detail(op, targetID)
}

func (s *AdminService) detail(op domain.Session, targetID int64) *domain.Reply {
	texts := s.texts(op)

	target, ok := s.sessions.Get(targetID)
	if !ok {
		return textReply(texts.UserNotFound)
	}

	var b strings.Builder
	fmt.Fprintf(&b, texts.UserDetail,
		target.Handle(), target.UserID,
		target.Blocked, target.Unlimited,
		target.FatwaUsed, target.FatwaLimit,
		target.QuestionUsed, target.QuestionLimit,
		target.LastReset.DisplayString(domain.DayOf(s.now()), texts.Today, texts.Yesterday),
	)

	if recent := s.activity.Recent(targetID, recentActivityInDetail); len(recent) > 0 {
		b.WriteString("\n\n")
		b.WriteString(texts.RecentActivity)
		for _, entry := range recent {
			fmt.Fprintf(&b, "\n• %s %s", entry.At.Format("02 Jan 15:04"), entry.Action)
		}
	}

	return &domain.Reply{
		Text:   b.String(),
		Inline: detailButtons(texts, targetID),
	}
}

// BeginSetLimit moves the operator to AwaitLimitValues for an existing target
func (s *AdminService) BeginSetLimit(operatorID, targetID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "set_limit")
	if !ok {
		return nil
	}
	defer unlock()

	return s.awaitLimits(op, targetID)
}

func (s *AdminService) awaitLimits(op domain.Session, targetID int64) *domain.Reply {
	texts := s.texts(op)
	if _, ok := s.sessions.Get(targetID); !ok {
		return textReply(texts.UserNotFound)
	}

	s.pending.Set(op.UserID, domain.AwaitLimitValues{TargetID: targetID})
	return &domain.Reply{Text: texts.EnterLimits, Inline: cancelButton(texts)}
}

// Prompt asks for a target id and remembers what to do with it.
// Only the AwaitTarget variants are accepted.
func (s *AdminService) Prompt(operatorID int64, action domain.PendingAction) *domain.Reply {
	switch action.(type) {
	case domain.AwaitTargetForDetail, domain.AwaitTargetForLimitUser,
		domain.AwaitTargetForBlock, domain.AwaitTargetForUnblock:
	default:
		s.logger.Error("Prompt called with non-target action", zap.String("pending", fmt.Sprintf("%T", action)))
		return nil
	}

	op, unlock, ok := s.begin(operatorID, action.Kind())
	if !ok {
		return nil
	}
	defer unlock()

	texts := s.texts(op)
	s.pending.Set(operatorID, action)
	return &domain.Reply{Text: texts.EnterUserID, Inline: cancelButton(texts)}
}

// ToggleUnlimited flips the target's unlimited flag
func (s *AdminService) ToggleUnlimited(operatorID, targetID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "toggle_unlimited")
	if !ok {
		return nil
	}
	defer unlock()

	texts := s.texts(op)
	var enabled bool
	err := s.sessions.Update(targetID, func(u *domain.Session) error {
		u.Unlimited = !u.Unlimited
		enabled = u.Unlimited
		return nil
	})
	if err != nil {
		return s.targetError(texts, targetID, err)
	}

	s.logger.Info("Unlimited toggled",
		zap.Int64("operator_id", operatorID),
		zap.Int64("target_id", targetID),
		zap.Bool("unlimited", enabled),
	)
	if enabled {
		return textReply(texts.UnlimitedOn)
	}
	return textReply(texts.UnlimitedOff)
}

// Block marks the target as blocked
func (s *AdminService) Block(operatorID, targetID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "block")
	if !ok {
		return nil
	}
	defer unlock()

	return s.setBlocked(op, targetID, true)
}

// Unblock clears the target's blocked flag
func (s *AdminService) Unblock(operatorID, targetID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "unblock")
	if !ok {
		return nil
	}
	defer unlock()

	return s.setBlocked(op, targetID, false)
}

func (s *AdminService) setBlocked(op domain.Session, targetID int64, blocked bool) *domain.Reply {
	texts := s.texts(op)
	err := s.sessions.Update(targetID, func(u *domain.Session) error {
		u.Blocked = blocked
		return nil
	})
	if err != nil {
		return s.targetError(texts, targetID, err)
	}

	s.logger.Info("Block state changed",
		zap.Int64("operator_id", op.UserID),
		zap.Int64("target_id", targetID),
		zap.Bool("blocked", blocked),
	)
	if blocked {
		return textReply(texts.UserBlocked)
	}
	return textReply(texts.UserUnblocked)
}

// Cancel drops any pending action
func (s *AdminService) Cancel(operatorID int64) *domain.Reply {
	op, unlock, ok := s.begin(operatorID, "cancel")
	if !ok {
		return nil
	}
	defer unlock()

	return &domain.Reply{
		Text:     s.texts(op).Cancelled,
		Keyboard: adminPanelMenu(s.catalog, op.Language),
	}
}

// HandleInput consumes a text message while the operator has a pending action.
// handled is false when nothing was pending, in which case the router
// continues with its normal dispatch.
func (s *AdminService) HandleInput(operatorID int64, text string) (reply *domain.Reply, handled bool) {
	unlock := s.locks.Lock(operatorID)
	defer unlock()

	action, ok := s.pending.Get(operatorID)
	if !ok {
		return nil, false
	}

	op, ok := s.authorize(operatorID, action.Kind())
	if !ok {
		return nil, false
	}
	texts := s.texts(op)

	switch a := action.(type) {
	case domain.AwaitLimitValues:
		return s.applyLimits(op, a.TargetID, text), true

	case domain.AwaitTargetForDetail:
		targetID, errReply := s.resolveTarget(texts, text)
		if errReply != nil {
			return errReply, true
		}
		s.pending.Clear(operatorID)
		return s.detail(op, targetID), true

	case domain.AwaitTargetForLimitUser:
		targetID, errReply := s.resolveTarget(texts, text)
		if errReply != nil {
			return errReply, true
		}
		return s.awaitLimits(op, targetID), true

	case domain.AwaitTargetForBlock:
		targetID, errReply := s.resolveTarget(texts, text)
		if errReply != nil {
			return errReply, true
		}
		s.pending.Clear(operatorID)
		return s.setBlocked(op, targetID, true), true

	case domain.AwaitTargetForUnblock:
		targetID, errReply := s.resolveTarget(texts, text)
		if errReply != nil {
			return errReply, true
		}
		s.pending.Clear(operatorID)
		return s.setBlocked(op, targetID, false), true

	default:
		s.pending.Clear(operatorID)
		s.logger.Error("Unknown pending admin action",
			zap.Int64("operator_id", operatorID),
			zap.String("pending", action.Kind()),
		)
		return textReply(texts.Failure), true
	}
}

// applyLimits parses and stores new limits; invalid input keeps the state
func (s *AdminService) applyLimits(op domain.Session, targetID int64, text string) *domain.Reply {
	texts := s.texts(op)

	fatwa, question, err := ParseLimits(text)
	if err != nil {
		s.logger.Debug("Rejected limit values",
			zap.Int64("operator_id", op.UserID),
			zap.Error(err),
		)
		return &domain.Reply{Text: texts.InvalidLimits, Inline: cancelButton(texts)}
	}

	err = s.sessions.Update(targetID, func(u *domain.Session) error {
		u.FatwaLimit = fatwa
		u.QuestionLimit = question
		return nil
	})
	s.pending.Clear(op.UserID)
	if err != nil {
		return s.targetError(texts, targetID, err)
	}

	s.logger.Info("Limits updated",
		zap.Int64("operator_id", op.UserID),
		zap.Int64("target_id", targetID),
		zap.Int("fatwa_limit", fatwa),
		zap.Int("question_limit", question),
	)
	return textReply(texts.LimitsUpdated)
}

// resolveTarget parses an id typed by the operator and checks it exists.
// On failure the pending action is kept so the operator can retry.
func (s *AdminService) resolveTarget(texts locale.Texts, text string) (int64, *domain.Reply) {
	targetID, err := parseUserID(text)
	if err != nil {
		return 0, &domain.Reply{Text: texts.InvalidUserID, Inline: cancelButton(texts)}
	}
	if _, ok := s.sessions.Get(targetID); !ok {
		return 0, &domain.Reply{Text: texts.UserNotFound, Inline: cancelButton(texts)}
	}
	return targetID, nil
}

func (s *AdminService) targetError(texts locale.Texts, targetID int64, err error) *domain.Reply {
	if errors.Is(err, domain.ErrUserNotFound) {
		return textReply(texts.UserNotFound)
	}
	s.logger.Error("Failed to update target", zap.Error(err), zap.Int64("target_id", targetID))
	return textReply(texts.Failure)
}
