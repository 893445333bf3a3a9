package service

import (
	"context"
	"fmt"
	"time"

	"medinabot/internal/completion"
	"medinabot/internal/domain"
	"medinabot/internal/locale"
	"medinabot/internal/metrics"
	"medinabot/internal/repository"

	"go.uber.org/zap"
)

// DefaultCompletionTimeout bounds a completion call when none is configured
const DefaultCompletionTimeout = 60 * time.Second

// Completer answers a question in the requested language
type Completer interface {
	Complete(ctx context.Context, req completion.Request) (string, error)
}

// Router decides which subsystem handles an inbound event.
// Text priority: pending admin action, registration gate, ask mode, menu commands.
type Router struct {
	sessions  repository.SessionRepository
	admin     *AdminService
	quota     *QuotaService
	activity  *ActivityService
	completer Completer
	catalog   *locale.Catalog
	timeout   time.Duration
	logger    *zap.Logger
}

// NewRouter creates a new message router
func NewRouter(
	sessions repository.SessionRepository,
	admin *AdminService,
	quota *QuotaService,
	activity *ActivityService,
	completer Completer,
	catalog *locale.Catalog,
	timeout time.Duration,
	logger *zap.Logger,
) *Router {
	if timeout <= 0 {
		timeout = DefaultCompletionTimeout
	}
	return &Router{
		sessions:  sessions,
		admin:     admin,
		quota:     quota,
		activity:  activity,
		completer: completer,
		catalog:   catalog,
		timeout:   timeout,
		logger:    logger,
	}
}

// HandleText routes a text message. A nil reply means the message is ignored.
func (r *Router) HandleText(ctx context.Context, in domain.Inbound) *domain.Reply {
	sess := r.sessions.GetOrCreate(in.UserID, in.Username)

	if reply, handled := r.admin.HandleInput(in.UserID, in.Text); handled {
		return reply
	}

	if !sess.Registered {
		cmd, ok := r.catalog.Match(in.Text)
		if ok && (cmd == locale.CmdStart || cmd == locale.CmdLogin) {
			return r.runCommand(sess, cmd)
		}
		r.ignore(in.UserID, "unregistered")
		return nil
	}

	if sess.AwaitingQuestion {
		if reply, handled := r.ask(ctx, in); handled {
			return reply
		}
	}

	cmd, ok := r.catalog.Match(in.Text)
	if !ok {
		r.ignore(in.UserID, "no_match")
		return nil
	}
	return r.runCommand(sess, cmd)
}

// HandleCallback routes an inline button press. Only admins get a reply.
func (r *Router) HandleCallback(ctx context.Context, in domain.Inbound) *domain.Reply {
	r.sessions.GetOrCreate(in.UserID, in.Username)

	action, targetID, err := ParseCallback(in.Callback)
	if err != nil {
		r.logger.Warn("Unhandled callback", zap.Error(err), zap.Int64("user_id", in.UserID))
		return nil
	}

	switch action {
	case CallbackDetail:
		return r.admin.Detail(in.UserID, targetID)
	case CallbackSetLimit:
		return r.admin.BeginSetLimit(in.UserID, targetID)
	case CallbackUnlimited:
		return r.admin.ToggleUnlimited(in.UserID, targetID)
	case CallbackBlock:
		return r.admin.Block(in.UserID, targetID)
	case CallbackUnblock:
		return r.admin.Unblock(in.UserID, targetID)
	case CallbackCancel:
		return r.admin.Cancel(in.UserID)
	}
	return nil
}

type askOutcome int

const (
	askNotPending askOutcome = iota
	askBlocked
	askLimited
	askAccepted
)

// ask handles the message that follows the ask command. The quota decision
// is taken under the record lock; the completion call runs without it.
func (r *Router) ask(ctx context.Context, in domain.Inbound) (*domain.Reply, bool) {
	outcome := askNotPending
	var sess domain.Session

	err := r.sessions.Update(in.UserID, func(s *domain.Session) error {
		if !s.AwaitingQuestion {
			return nil
		}
		s.AwaitingQuestion = false
		r.quota.ResetIfNewDay(s)

		switch {
		case s.Blocked:
			outcome = askBlocked
		case !r.quota.TryConsume(s, domain.QuotaQuestion):
			outcome = askLimited
		default:
			outcome = askAccepted
		}
		sess = *s
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to update session", zap.Error(err), zap.Int64("user_id", in.UserID))
		return nil, false
	}

	texts := r.catalog.For(sess.Language).Texts

	switch outcome {
	case askBlocked:
		metrics.QuestionsTotal.WithLabelValues("blocked").Inc()
		return textReply(texts.Blocked), true
	case askLimited:
		metrics.QuestionsTotal.WithLabelValues("limited").Inc()
		return textReply(texts.LimitReached), true
	case askAccepted:
		metrics.QuestionsTotal.WithLabelValues("accepted").Inc()
	default:
		return nil, false
	}

	r.activity.Record(in.UserID, in.Text)

	answer, err := r.complete(ctx, sess, in.Text)
	if err != nil {
		r.logger.Error("Completion failed",
			zap.Error(err),
			zap.Int64("user_id", in.UserID),
			zap.String("language", string(sess.Language)),
		)
		return textReply(texts.Failure), true
	}

	return &domain.Reply{
		Text:     answer + "\n\n" + texts.Disclaimer,
		Keyboard: mainMenu(r.catalog, sess.Language, sess.IsAdmin()),
	}, true
}

func (r *Router) complete(ctx context.Context, sess domain.Session, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	answer, err := r.completer.Complete(ctx, completion.Request{
		Language: sess.Language.CompletionName(),
		Text:     text,
	})
	if err == nil && answer == "" {
		err = domain.ErrEmptyAnswer
	}

	status := "ok"
	if err != nil {
		status = "error"
		metrics.CompletionErrorsTotal.Inc()
	}
	metrics.CompletionDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	return answer, err
}

// runCommand executes a menu command for a known session
func (r *Router) runCommand(sess domain.Session, cmd locale.Command) *domain.Reply {
	texts := r.catalog.For(sess.Language).Texts

	switch cmd {
	case locale.CmdStart:
		if !sess.Registered {
			return &domain.Reply{Text: texts.Welcome, Keyboard: loginMenu(r.catalog, sess.Language)}
		}
		return r.withMainMenu(sess, texts.Welcome)

	case locale.CmdLogin:
		updated, err := r.update(sess.UserID, func(s *domain.Session) { s.Registered = true })
		if err != nil {
			return textReply(texts.Failure)
		}
		r.logger.Info("User logged in", zap.Int64("user_id", sess.UserID))
		return r.withMainMenu(updated, texts.LoginOK)

	case locale.CmdAsk:
		if _, err := r.update(sess.UserID, func(s *domain.Session) { s.AwaitingQuestion = true }); err != nil {
			return textReply(texts.Failure)
		}
		return textReply(texts.AskNow)

	case locale.CmdChangeLanguage:
		return &domain.Reply{Text: texts.ChooseLanguage, Keyboard: languageMenu(r.catalog, sess.Language)}

	case locale.CmdLangID, locale.CmdLangEN, locale.CmdLangAR:
		lang := locale.LanguageCommands[cmd]
		updated, err := r.update(sess.UserID, func(s *domain.Session) { s.Language = lang })
		if err != nil {
			return textReply(texts.Failure)
		}
		return r.withMainMenu(updated, r.catalog.For(lang).Texts.Welcome)

	case locale.CmdStatus:
		updated, err := r.update(sess.UserID, func(s *domain.Session) { r.quota.ResetIfNewDay(s) })
		if err != nil {
			return textReply(texts.Failure)
		}
		if updated.IsAdmin() {
			return textReply(texts.Unlimited)
		}
		return textReply(fmt.Sprintf(texts.Status,
			updated.FatwaUsed, updated.FatwaLimit,
			updated.QuestionUsed, updated.QuestionLimit,
		))

	case locale.CmdBack:
		return r.withMainMenu(sess, texts.BackToMenu)

	case locale.CmdAdminPanel:
		return r.admin.OpenPanel(sess.UserID)
	case locale.CmdListUsers:
		return r.admin.ListUsers(sess.UserID)
	case locale.CmdFindUser:
		return r.admin.Prompt(sess.UserID, domain.AwaitTargetForDetail{})
	case locale.CmdSetLimit:
		return r.admin.Prompt(sess.UserID, domain.AwaitTargetForLimitUser{})
	case locale.CmdBlockUser:
		return r.admin.Prompt(sess.UserID, domain.AwaitTargetForBlock{})
	case locale.CmdUnblockUser:
		return r.admin.Prompt(sess.UserID, domain.AwaitTargetForUnblock{})
	}

	r.logger.Error("Command has no handler", zap.String("command", string(cmd)))
	return nil
}

func (r *Router) withMainMenu(sess domain.Session, text string) *domain.Reply {
	return &domain.Reply{
		Text:     text,
		Keyboard: mainMenu(r.catalog, sess.Language, sess.IsAdmin()),
	}
}

// update mutates the session under its lock and returns the new state
func (r *Router) update(userID int64, fn func(s *domain.Session)) (domain.Session, error) {
	var updated domain.Session
	err := r.sessions.Update(userID, func(s *domain.Session) error {
		fn(s)
		updated = *s
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to update session", zap.Error(err), zap.Int64("user_id", userID))
	}
	return updated, err
}

func (r *Router) ignore(userID int64, reason string) {
	metrics.IgnoredMessagesTotal.WithLabelValues(reason).Inc()
	r.logger.Debug("Ignoring message", zap.Int64("user_id", userID), zap.String("reason", reason))
}
