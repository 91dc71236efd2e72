package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	RoleID    *uuid.UUID `json:"roleId"`
	IsActive  bool       `json:"isActive"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RoleID:    u.RoleID,
		IsActive:  u.IsActive,
		DeletedAt: u.DeletedAt,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type publicUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type roleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toRoleResponse(r *domain.Role) roleResponse {
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return roleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: perms,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type auditLogResponse struct {
	ID                  string         `json:"id"`
	Action              string         `json:"action"`
	TargetUserID        *uuid.UUID     `json:"targetUserId,omitempty"`
	TargetUsername      string         `json:"targetUsername,omitempty"`
	TargetRoleID        *uuid.UUID     `json:"targetRoleId,omitempty"`
	PerformedBy         uuid.UUID      `json:"performedBy"`
	PerformedByUsername string         `json:"performedByUsername,omitempty"`
	Details             map[string]any `json:"details,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}

type shareResponse struct {
	UserID     uuid.UUID   `json:"userId"`
	Username   string      `json:"username"`
	Permission domain.Tier `json:"permission"`
	GrantedAt  time.Time   `json:"grantedAt"`
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		UserID:    c.AuthorID,
		Username:  c.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentResponses(cs []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCommentResponse(c))
	}
	return out
}

type dashboardResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OwnerID     uuid.UUID         `json:"owner"`
	OwnerName   string            `json:"ownerName"`
	IsPublic    bool              `json:"isPublic"`
	SharedWith  []shareResponse   `json:"sharedWith"`
	Comments    []commentResponse `json:"comments,omitempty"`
	Cards       []int             `json:"cards"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// toDashboardResponse renders d. Comments are included only when
// withComments is set; listings leave them out.
func toDashboardResponse(d *domain.Dashboard, withComments bool) dashboardResponse {
	resp := dashboardResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		OwnerID:     d.OwnerID,
		OwnerName:   d.OwnerName,
		IsPublic:    d.IsPublic,
		SharedWith:  make([]shareResponse, 0, len(d.Shares)),
		Cards:       d.Cards,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if resp.Cards == nil {
		resp.Cards = []int{}
	}
	for _, s := range d.Shares {
		resp.SharedWith = append(resp.SharedWith, shareResponse{
			UserID:     s.UserID,
			Username:   s.Username,
			Permission: s.Tier,
			GrantedAt:  s.GrantedAt,
		})
	}
	if withComments {
		resp.Comments = toCommentResponses(d.Comments)
	}
	return resp
}

func toDashboardList(ds []domain.Dashboard) []dashboardResponse {
	out := make([]dashboardResponse, 0, len(ds))
	for i := range ds {
		out = append(out, toDashboardResponse(&ds[i], false))
	}
	return out
}

type queryResponse struct {
	ID                uuid.UUID        `json:"id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	DataSourceID      uuid.UUID        `json:"dataSource"`
	DataSourceName    string           `json:"dataSourceName,omitempty"`
	ChartType         domain.ChartKind `json:"chartType"`
	Type              domain.QueryType `json:"type"`
	QueryDefinition   json.RawMessage  `json:"queryDefinition"`
	MetabaseCardID    *int             `json:"metabaseCardId"`
	Synced            bool             `json:"synced"`
	DashboardID       *uuid.UUID       `json:"dashboardId"`
	CreatedBy         uuid.UUID        `json:"createdBy"`
	CreatedByUsername string           `json:"createdByUsername,omitempty"`
	MetabaseError     string           `json:"metabaseError,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func toQueryResponse(q *domain.Query) queryResponse {
	resp := queryResponse{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		DataSourceID:    q.DataSourceID,
		ChartType:       q.ChartKind,
		Type:            q.Type,
		QueryDefinition: q.Definition,
		DashboardID:     q.DashboardID,
		CreatedBy:       q.CreatedBy,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
	if len(resp.QueryDefinition) == 0 {
		resp.QueryDefinition = json.RawMessage("{}")
	}
	if cardID, ok := q.CardID(); ok {
		resp.MetabaseCardID = &cardID
		resp.Synced = true
	}
	return resp
}

type credentialsResponse struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Database string `json:"database"`
}

type dataSourceResponse struct {
	ID                    uuid.UUID             `json:"id"`
	Name                  string                `json:"name"`
	Type                  domain.DataSourceKind `json:"type"`
	ConnectionCredentials credentialsResponse   `json:"connectionCredentials"`
	MetabaseDatabaseID    *int                  `json:"metabaseDatabaseId"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

// toDataSourceResponse renders ds without its password.
func toDataSourceResponse(ds *domain.DataSource) dataSourceResponse {
	return dataSourceResponse{
		ID:   ds.ID,
		Name: ds.Name,
		Type: ds.Kind,
		ConnectionCredentials: credentialsResponse{
			Host:     ds.Credentials.Host,
			Port:     ds.Credentials.Port,
			Username: ds.Credentials.Username,
			Database: ds.Credentials.Database,
		},
		MetabaseDatabaseID: ds.RemoteDBID,
		CreatedAt:          ds.CreatedAt,
		UpdatedAt:          ds.UpdatedAt,
	}
}
