package domain

// Status is a lifecycle sentinel stored in an entity's status column.
// The string values are a wire contract with the provisioning daemon,
// which re-scans all status columns and converges in-progress rows to a
// terminal value (or leaves an error string behind).
type Status string

const (
	// Terminal values. Only the daemon may write these.
	StatusOK       Status = "ok"
	StatusDisabled Status = "disabled"

	// In-progress values, owned by the daemon once written.
	StatusToAdd       Status = "toadd"
	StatusToChange    Status = "tochange"
	StatusToChangePwd Status = "tochangepwd"
	StatusToDelete    Status = "todelete"
	StatusToEnable    Status = "toenable"
	StatusToDisable   Status = "todisable"
	StatusToRestore   Status = "torestore"

	// Awaiting reseller approval; not visible to the daemon.
	StatusOrdered Status = "ordered"

	// Plugin-specific in-progress values.
	StatusToInstall   Status = "toinstall"
	StatusToUninstall Status = "touninstall"
	StatusToUpdate    Status = "toupdate"
)

// Requestable holds the statuses that represent work the daemon still has
// to pick up. Rows in these states gate the "run provisioning now" action
// and feed the pending-task count.
var Requestable = []Status{
	StatusToInstall, StatusToUpdate, StatusToUninstall,
	StatusToAdd, StatusToChange, StatusToRestore,
	StatusToEnable, StatusToDisable, StatusToDelete,
}

// EntityKind identifies one status-bearing entity table. The values double
// as the debugger's item-type identifiers on the HTTP surface.
type EntityKind string

const (
	KindUser           EntityKind = "user"
	KindDomain         EntityKind = "domain"
	KindAlias          EntityKind = "alias"
	KindSubdomain      EntityKind = "subdomain"
	KindSubdomainAlias EntityKind = "subdomain_alias"
	KindCustomDNS      EntityKind = "custom_dns"
	KindFTP            EntityKind = "ftp"
	KindMail           EntityKind = "mail"
	KindHtaccess       EntityKind = "htaccess"
	KindHtgroup        EntityKind = "htgroup"
	KindHtpasswd       EntityKind = "htpasswd"
	KindServerIP       EntityKind = "ip"
	KindPlugin         EntityKind = "plugin"
)

// EntityKinds lists every kind scanned by the reconciliation sweep, in
// display order.
var EntityKinds = []EntityKind{
	KindUser, KindDomain, KindAlias, KindSubdomain, KindSubdomainAlias,
	KindCustomDNS, KindFTP, KindMail, KindHtaccess, KindHtgroup,
	KindHtpasswd, KindServerIP, KindPlugin,
}

// expectedStatuses maps each entity kind to the set of values considered
// healthy or legitimately in flight for that table. Anything outside the
// set is an error state the sweep must surface. The sets differ per kind:
// only aliases and mail accounts can be ordered, htaccess rows are never
// enabled/disabled as a pair, and server IPs know no disabled state.
var expectedStatuses = map[EntityKind][]Status{
	KindUser: {StatusOK, StatusToAdd, StatusToChange, StatusToChangePwd, StatusToDelete},
	KindDomain: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToRestore,
		StatusToEnable, StatusToDisable, StatusToDelete},
	KindAlias: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToRestore,
		StatusToEnable, StatusToDisable, StatusToDelete, StatusOrdered},
	KindSubdomain: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToRestore,
		StatusToEnable, StatusToDisable, StatusToDelete},
	KindSubdomainAlias: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToRestore,
		StatusToEnable, StatusToDisable, StatusToDelete},
	KindCustomDNS: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToRestore,
		StatusToEnable, StatusToDisable, StatusToDelete},
	KindFTP: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange,
		StatusToEnable, StatusToDisable, StatusToDelete},
	KindMail: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToRestore,
		StatusToEnable, StatusToDisable, StatusToDelete, StatusOrdered},
	KindHtaccess: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToDelete},
	KindHtgroup:  {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToDelete},
	KindHtpasswd: {StatusOK, StatusDisabled, StatusToAdd, StatusToChange, StatusToDelete},
	KindServerIP: {StatusOK, StatusToAdd, StatusToChange, StatusToDelete},
	KindPlugin: {StatusOK, StatusDisabled, StatusToInstall, StatusToUpdate, StatusToUninstall,
		StatusToEnable, StatusToDisable, StatusToChange, StatusToDelete},
}

// ExpectedStatuses returns the healthy-or-in-flight set for a kind.
func ExpectedStatuses(kind EntityKind) []Status {
	return expectedStatuses[kind]
}

// IsTerminal reports whether s needs no further daemon action.
func (s Status) IsTerminal() bool {
	return s == StatusOK || s == StatusDisabled
}

// IsRequestable reports whether s represents pending daemon work.
func (s Status) IsRequestable() bool {
	for _, r := range Requestable {
		if s == r {
			return true
		}
	}
	return false
}
