package types

import "context"

// ApiClient covers every endpoint the app talks to. Each method issues
// exactly one request and reflects exactly one outcome: no retries, no
// caching, no deduplication. The context bounds the request's lifetime so
// a caller that goes away can cancel in-flight work.
type ApiClient interface {
	SignIn(ctx context.Context, req SignInRequest) (*SessionResponse, *ApiError)
	SignUp(ctx context.Context, req SignUpRequest) (*SessionResponse, *ApiError)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (string, *ApiError)

	ListAddressTree(ctx context.Context) ([]*Province, *ApiError)

	ListCitizenPosts(ctx context.Context) ([]*Post, *ApiError)
	GetPost(ctx context.Context, postId int) (*Post, *ApiError)
	CreateComment(ctx context.Context, req CreateCommentRequest) *ApiError

	ListMyPenalties(ctx context.Context) ([]*Penalty, *ApiError)
	PayPenalty(ctx context.Context, req PayPenaltyRequest) (string, *ApiError)

	ListNotifications(ctx context.Context) ([]*Notification, *ApiError)
	MarkNotificationRead(ctx context.Context, notificationId int) *ApiError
	DeleteNotification(ctx context.Context, notificationId int) *ApiError
}
