package domain

// AccountType distinguishes the three panel account levels.
type AccountType string

const (
	AccountAdmin    AccountType = "admin"
	AccountReseller AccountType = "reseller"
	AccountUser     AccountType = "user"
)

// Account is a panel account (administrator, reseller or customer).
// CreatedBy points at the account that provisioned it; customers are
// created by resellers, resellers by administrators.
type Account struct {
	ID        int64
	Name      string
	Type      AccountType
	CreatedBy int64
	Status    Status
}

// DomainLimits are the per-domain resource assignments a reseller grants
// to a customer. -1 disables a resource, 0 means unlimited.
type DomainLimits struct {
	Subdomains   int64
	Aliases      int64
	Mailboxes    int64
	FTPUsers     int64
	SQLDatabases int64
	SQLUsers     int64
	Disk         int64
	Traffic      int64
}

// HostingDomain is a customer's main domain, the root of a cascade subtree.
type HostingDomain struct {
	ID        int64
	AccountID int64
	Name      string
	Status    Status
	Limits    DomainLimits
}

// DomainAlias is an extra name served alongside the main domain. Customers
// may order one, leaving it in the ordered status until a reseller approves.
type DomainAlias struct {
	ID       int64
	DomainID int64
	Name     string
	Mount    string
	Status   Status
}

type Subdomain struct {
	ID       int64
	DomainID int64
	Name     string
	Status   Status
}

type SubdomainAlias struct {
	ID      int64
	AliasID int64
	Name    string
	Status  Status
}

// MailOwnerKind tags which entity a mailbox hangs off. The values match
// the prefixes of the mail_type column.
type MailOwnerKind string

const (
	MailOwnerDomain         MailOwnerKind = "normal"
	MailOwnerSubdomain      MailOwnerKind = "subdom"
	MailOwnerAlias          MailOwnerKind = "alias"
	MailOwnerSubdomainAlias MailOwnerKind = "alssub"
)

// MailAccount is a mailbox or forward. DomainID always references the main
// domain; SubID references the subentity named by OwnerKind (zero for
// mailboxes directly on the main domain). POActive mirrors whether IMAP/POP
// access is switched on, which soft suspension toggles without touching the
// provisioning status.
type MailAccount struct {
	ID        int64
	DomainID  int64
	SubID     int64
	Address   string
	OwnerKind MailOwnerKind
	Forward   bool
	POActive  bool
	Status    Status
}

// FTPUser is keyed by its username rather than a numeric id; the system
// user created on disk carries the same name.
type FTPUser struct {
	UserID    string
	AccountID int64
	Status    Status
}

// SQLDatabase and SQLUser carry no status column: the web tier holds
// database-administrator credentials and removes them synchronously.
type SQLDatabase struct {
	ID       int64
	DomainID int64
	Name     string
}

type SQLUser struct {
	ID         int64
	DatabaseID int64
	Name       string
	Host       string
}

// CertOwnerKind tags which entity kind an SSL certificate belongs to.
type CertOwnerKind string

const (
	CertOwnerDomain         CertOwnerKind = "dmn"
	CertOwnerAlias          CertOwnerKind = "als"
	CertOwnerSubdomain      CertOwnerKind = "sub"
	CertOwnerSubdomainAlias CertOwnerKind = "alssub"
)

// SSLCert references its owner polymorphically: OwnerID is an id in the
// table selected by OwnerKind.
type SSLCert struct {
	ID        int64
	OwnerID   int64
	OwnerKind CertOwnerKind
	Status    Status
}

type DNSRecord struct {
	ID       int64
	DomainID int64
	Name     string
	Class    string
	Type     string
	Data     string
	Status   Status
}

// HtaccessRule is a protected-area definition; HtaccessGroup and
// HtaccessUser are the credential rows it references.
type HtaccessRule struct {
	ID       int64
	DomainID int64
	AuthName string
	Status   Status
}

type HtaccessGroup struct {
	ID       int64
	DomainID int64
	Group    string
	Status   Status
}

type HtaccessUser struct {
	ID       int64
	DomainID int64
	Name     string
	Status   Status
}

type ServerIP struct {
	ID     int64
	Number string
	Card   string
	Status Status
}

type Plugin struct {
	ID     int64
	Name   string
	Status Status
}

// ResourceCounts is one row of reseller consumption counters, used both
// for the live aggregate and for the reseller's configured maximums.
type ResourceCounts struct {
	Domains      int64
	Subdomains   int64
	Aliases      int64
	Mailboxes    int64
	FTPUsers     int64
	SQLDatabases int64
	SQLUsers     int64
	Disk         int64
	Traffic      int64
}

// ResellerLimits pairs the recomputed current consumption with the
// configured maximums for one reseller.
type ResellerLimits struct {
	ResellerID int64
	Current    ResourceCounts
	Max        ResourceCounts
}

// StuckRow is a sweep finding: a row whose status is neither terminal nor
// a legitimate in-progress value for its table. The status is typically a
// daemon-reported error string.
type StuckRow struct {
	Kind   EntityKind
	ID     string
	Name   string
	Status Status
}
