package domain

// PendingAction is the single-slot admin workflow state of an operator.
// The set of implementations is closed: only the types below satisfy it.
type PendingAction interface {
	Kind() string
	pendingAction()
}

// AwaitTargetForDetail waits for a user id to show its detail
type AwaitTargetForDetail struct{}

// AwaitTargetForLimitUser waits for a user id whose limits will be edited
type AwaitTargetForLimitUser struct{}

// AwaitLimitValues waits for "<fatwaLimit> <questionLimit>" for TargetID
type AwaitLimitValues struct {
	TargetID int64
}

// AwaitTargetForBlock waits for a user id to block
type AwaitTargetForBlock struct{}

// AwaitTargetForUnblock waits for a user id to unblock
type AwaitTargetForUnblock struct{}

func (AwaitTargetForDetail) Kind() string    { return "await_target_for_detail" }
func (AwaitTargetForLimitUser) Kind() string { return "await_target_for_limit_user" }
func (AwaitLimitValues) Kind() string        { return "await_limit_values" }
func (AwaitTargetForBlock) Kind() string     { return "await_target_for_block" }
func (AwaitTargetForUnblock) Kind() string   { return "await_target_for_unblock" }

func (AwaitTargetForDetail) pendingAction()    {}
func (AwaitTargetForLimitUser) pendingAction() {}
func (AwaitLimitValues) pendingAction()        {}
func (AwaitTargetForBlock) pendingAction()     {}
func (AwaitTargetForUnblock) pendingAction()   {}
