package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req *CreateLeaveRequest) (*LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (*LeaveResponse, error)
	ListLeaves(ctx context.Context, filter *LeaveFilter) (*ListLeaveResponse, error)
	ApproveLeave(ctx context.Context, req *ResolveLeaveRequest, resolverID string) (*LeaveResponse, error)
	RejectLeave(ctx context.Context, req *ResolveLeaveRequest, resolverID string) (*LeaveResponse, error)
}
