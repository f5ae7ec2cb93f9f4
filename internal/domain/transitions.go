package domain

// Event is an administrative action that schedules a lifecycle transition.
// Events only ever move rows into in-progress statuses: the transitions
// from in-progress to terminal belong to the daemon alone, so no event
// produces ok or disabled and the web tier cannot write a terminal value
// through the validator.
type Event string

const (
	EventChange         Event = "change"
	EventChangePassword Event = "change_password"
	EventDelete         Event = "delete"
	EventDisable        Event = "disable"
	EventEnable         Event = "enable"
	EventRestore        Event = "restore"
	// EventApprove moves an ordered alias into provisioning.
	EventApprove Event = "approve"
)

// Transition defines a valid scheduling step: an event moves a row from
// Src to Dst.
type Transition struct {
	Event Event
	Src   Status
	Dst   Status
}

// Transitions defines every transition the web tier may schedule. This is
// domain knowledge consumed by the FSM adapter.
var Transitions = []Transition{
	{Event: EventChange, Src: StatusOK, Dst: StatusToChange},
	{Event: EventChange, Src: StatusDisabled, Dst: StatusToChange},
	{Event: EventChangePassword, Src: StatusOK, Dst: StatusToChangePwd},
	{Event: EventDelete, Src: StatusOK, Dst: StatusToDelete},
	{Event: EventDelete, Src: StatusDisabled, Dst: StatusToDelete},
	{Event: EventDisable, Src: StatusOK, Dst: StatusToDisable},
	{Event: EventEnable, Src: StatusDisabled, Dst: StatusToEnable},
	{Event: EventRestore, Src: StatusDisabled, Dst: StatusToRestore},
	{Event: EventApprove, Src: StatusOrdered, Dst: StatusToAdd},
}
