package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neomorfeo/hostiq/internal/app"
	"github.com/neomorfeo/hostiq/internal/domain"
)

// Services bundles the application services the API dispatches to.
type Services struct {
	Customers *app.CustomerService
	Aliases   *app.AliasService
	SQL       *app.SQLService
	Resellers *app.ResellerService
	Debugger  *app.DebuggerService
}

// --- Customers ---

type DeleteCustomerInput struct {
	ID int64 `path:"id" doc:"Customer account ID"`
}

type ChangeCustomerStatusInput struct {
	ID   int64 `path:"id" doc:"Customer account ID"`
	Body struct {
		Action string `json:"action" enum:"activate,deactivate" doc:"Status change to schedule"`
	}
}

// --- Aliases ---

type DeleteAliasInput struct {
	ID int64 `path:"id" doc:"Domain alias ID"`
}

type ApproveAliasInput struct {
	ID int64 `path:"id" doc:"Domain alias ID"`
}

type RejectAliasInput struct {
	ID int64 `path:"id" doc:"Domain alias ID"`
}

// --- SQL objects ---

type DeleteSQLDatabaseInput struct {
	DomainID int64 `path:"domainID" doc:"Owning domain ID"`
	ID       int64 `path:"id" doc:"SQL database ID"`
}

type DeleteSQLUserInput struct {
	DomainID int64 `path:"domainID" doc:"Owning domain ID"`
	ID       int64 `path:"id" doc:"SQL user ID"`
}

// --- Resellers ---

type ResellerLimitsBody struct {
	Domains      int64 `json:"domains" doc:"Maximum domains"`
	Subdomains   int64 `json:"subdomains" doc:"Maximum subdomains"`
	Aliases      int64 `json:"aliases" doc:"Maximum domain aliases"`
	Mailboxes    int64 `json:"mailboxes" doc:"Maximum mail accounts"`
	FTPUsers     int64 `json:"ftp_users" doc:"Maximum FTP accounts"`
	SQLDatabases int64 `json:"sql_databases" doc:"Maximum SQL databases"`
	SQLUsers     int64 `json:"sql_users" doc:"Maximum SQL users"`
	Disk         int64 `json:"disk" doc:"Maximum disk space (MiB)"`
	Traffic      int64 `json:"traffic" doc:"Maximum monthly traffic (MiB)"`
}

type UpdateResellerLimitsInput struct {
	ID   int64 `path:"id" doc:"Reseller account ID"`
	Body ResellerLimitsBody
}

type GetResellerLimitsInput struct {
	ID int64 `path:"id" doc:"Reseller account ID"`
}

type ResellerLimitsResponse struct {
	ResellerID int64              `json:"reseller_id"`
	Current    ResellerLimitsBody `json:"current" doc:"Recomputed consumption counters"`
	Max        ResellerLimitsBody `json:"max" doc:"Configured maximums"`
}

type GetResellerLimitsOutput struct {
	Body ResellerLimitsResponse
}

func toCountsBody(c domain.ResourceCounts) ResellerLimitsBody {
	return ResellerLimitsBody{
		Domains:      c.Domains,
		Subdomains:   c.Subdomains,
		Aliases:      c.Aliases,
		Mailboxes:    c.Mailboxes,
		FTPUsers:     c.FTPUsers,
		SQLDatabases: c.SQLDatabases,
		SQLUsers:     c.SQLUsers,
		Disk:         c.Disk,
		Traffic:      c.Traffic,
	}
}

func toCounts(b ResellerLimitsBody) domain.ResourceCounts {
	return domain.ResourceCounts{
		Domains:      b.Domains,
		Subdomains:   b.Subdomains,
		Aliases:      b.Aliases,
		Mailboxes:    b.Mailboxes,
		FTPUsers:     b.FTPUsers,
		SQLDatabases: b.SQLDatabases,
		SQLUsers:     b.SQLUsers,
		Disk:         b.Disk,
		Traffic:      b.Traffic,
	}
}

// --- Debugger ---

type StuckRowResponse struct {
	Kind   string `json:"kind" doc:"Entity kind"`
	ID     string `json:"id" doc:"Row identifier"`
	Name   string `json:"name" doc:"Human-readable entity name"`
	Status string `json:"status" doc:"Unexpected status value, usually a daemon error message"`
}

type ListStuckOutput struct {
	Body []StuckRowResponse
}

type PendingOutput struct {
	Body struct {
		Pending int `json:"pending" doc:"Rows awaiting daemon pickup"`
	}
}

type ForceRetryInput struct {
	Kind string `path:"kind" doc:"Entity kind"`
	ID   string `path:"id" doc:"Row identifier"`
}

type RunNowOutput struct {
	Body struct {
		Delivered bool `json:"delivered" doc:"Whether the daemon acknowledged the wake-up"`
	}
}

// Register adds all API routes to the Huma API.
func Register(api huma.API, svc Services) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-customer",
		Method:        http.MethodDelete,
		Path:          "/api/v1/customers/{id}",
		Summary:       "Schedule a customer and all dependent entities for deletion",
		Tags:          []string{"Customers"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *DeleteCustomerInput) (*struct{}, error) {
		if err := svc.Customers.Delete(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "change-customer-status",
		Method:        http.MethodPost,
		Path:          "/api/v1/customers/{id}/status",
		Summary:       "Schedule activation or deactivation of a customer",
		Tags:          []string{"Customers"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *ChangeCustomerStatusInput) (*struct{}, error) {
		var err error
		switch input.Body.Action {
		case "activate":
			err = svc.Customers.Activate(ctx, input.ID)
		case "deactivate":
			err = svc.Customers.Deactivate(ctx, input.ID)
		}
		if err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-alias",
		Method:        http.MethodDelete,
		Path:          "/api/v1/aliases/{id}",
		Summary:       "Schedule a domain alias and its descendants for deletion",
		Tags:          []string{"Aliases"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *DeleteAliasInput) (*struct{}, error) {
		if err := svc.Aliases.Delete(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "approve-alias",
		Method:        http.MethodPost,
		Path:          "/api/v1/aliases/{id}/approve",
		Summary:       "Move an ordered domain alias into provisioning",
		Tags:          []string{"Aliases"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *ApproveAliasInput) (*struct{}, error) {
		if err := svc.Aliases.Approve(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "reject-alias",
		Method:        http.MethodPost,
		Path:          "/api/v1/aliases/{id}/reject",
		Summary:       "Reject and remove an ordered domain alias",
		Tags:          []string{"Aliases"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *RejectAliasInput) (*struct{}, error) {
		if err := svc.Aliases.Reject(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-sql-database",
		Method:        http.MethodDelete,
		Path:          "/api/v1/domains/{domainID}/sql-databases/{id}",
		Summary:       "Delete a SQL database and its users immediately",
		Tags:          []string{"SQL"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteSQLDatabaseInput) (*struct{}, error) {
		if err := svc.SQL.DeleteDatabase(ctx, input.DomainID, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-sql-user",
		Method:        http.MethodDelete,
		Path:          "/api/v1/domains/{domainID}/sql-users/{id}",
		Summary:       "Delete a SQL user immediately",
		Tags:          []string{"SQL"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteSQLUserInput) (*struct{}, error) {
		if err := svc.SQL.DeleteUser(ctx, input.DomainID, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-reseller-limits",
		Method:      http.MethodGet,
		Path:        "/api/v1/resellers/{id}/limits",
		Summary:     "Get a reseller's consumption counters and maximums",
		Tags:        []string{"Resellers"},
	}, func(ctx context.Context, input *GetResellerLimitsInput) (*GetResellerLimitsOutput, error) {
		limits, err := svc.Resellers.Limits(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetResellerLimitsOutput{Body: ResellerLimitsResponse{
			ResellerID: limits.ResellerID,
			Current:    toCountsBody(limits.Current),
			Max:        toCountsBody(limits.Max),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "update-reseller-limits",
		Method:        http.MethodPut,
		Path:          "/api/v1/resellers/{id}/limits",
		Summary:       "Update a reseller's maximums and recompute consumption",
		Tags:          []string{"Resellers"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *UpdateResellerLimitsInput) (*struct{}, error) {
		if err := svc.Resellers.UpdateLimits(ctx, input.ID, toCounts(input.Body)); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-stuck-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/debugger/stuck",
		Summary:     "List rows whose status is outside the expected vocabulary",
		Tags:        []string{"Debugger"},
	}, func(ctx context.Context, input *struct{}) (*ListStuckOutput, error) {
		stuck, err := svc.Debugger.StuckRows(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]StuckRowResponse, len(stuck))
		for i, row := range stuck {
			resp[i] = StuckRowResponse{
				Kind:   string(row.Kind),
				ID:     row.ID,
				Name:   row.Name,
				Status: string(row.Status),
			}
		}
		return &ListStuckOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "pending-requests",
		Method:      http.MethodGet,
		Path:        "/api/v1/debugger/pending",
		Summary:     "Count rows awaiting daemon pickup",
		Tags:        []string{"Debugger"},
	}, func(ctx context.Context, input *struct{}) (*PendingOutput, error) {
		n, err := svc.Debugger.PendingRequests(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		out := &PendingOutput{}
		out.Body.Pending = n
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "force-retry",
		Method:        http.MethodPost,
		Path:          "/api/v1/debugger/items/{kind}/{id}/retry",
		Summary:       "Rewrite a stuck row's status so the daemon re-attempts it",
		Tags:          []string{"Debugger"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *ForceRetryInput) (*struct{}, error) {
		if err := svc.Debugger.ForceRetry(ctx, domain.EntityKind(input.Kind), input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "run-provisioning",
		Method:      http.MethodPost,
		Path:        "/api/v1/debugger/run",
		Summary:     "Wake the provisioning daemon immediately",
		Tags:        []string{"Debugger"},
	}, func(ctx context.Context, input *struct{}) (*RunNowOutput, error) {
		hint, err := svc.Debugger.RunNow(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		out := &RunNowOutput{}
		out.Body.Delivered = hint.Delivered
		return out, nil
	})
}

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return huma.Error404NotFound("customer not found")
	case errors.Is(err, domain.ErrAliasNotFound):
		return huma.Error404NotFound("domain alias not found")
	case errors.Is(err, domain.ErrSQLDatabaseNotFound):
		return huma.Error404NotFound("sql database not found")
	case errors.Is(err, domain.ErrSQLUserNotFound):
		return huma.Error404NotFound("sql user not found")
	case errors.Is(err, domain.ErrResellerNotFound):
		return huma.Error404NotFound("reseller not found")
	case errors.Is(err, domain.ErrNoPendingRequests):
		return huma.Error409Conflict("no pending provisioning request")
	case errors.Is(err, domain.ErrAliasNotOrdered):
		return huma.Error422UnprocessableEntity("domain alias is not awaiting approval")
	}

	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return huma.Error422UnprocessableEntity(trErr.Error())
	}

	var kindErr *domain.UnknownKindError
	if errors.As(err, &kindErr) {
		return huma.Error422UnprocessableEntity(kindErr.Error())
	}

	return huma.Error500InternalServerError("internal server error")
}
