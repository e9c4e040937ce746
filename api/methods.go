package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"inteko-cli/types"
)

// sessionEnvelope is the login/signup response shape: the business flag
// plus the issued token and profile.
type sessionEnvelope struct {
	Success *bool       `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *types.User `json:"user"`
}

func (a *Api) SignIn(ctx context.Context, req types.SignInRequest) (*types.SessionResponse, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/users/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := unauthenticatedClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody sessionEnvelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return nil, domainError(resp.StatusCode, respBody.Message)
	}

	return &types.SessionResponse{Token: respBody.Token, User: respBody.User}, nil
}

func (a *Api) SignUp(ctx context.Context, req types.SignUpRequest) (*types.SessionResponse, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/users/signup"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := unauthenticatedClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody sessionEnvelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return nil, domainError(resp.StatusCode, respBody.Message)
	}

	return &types.SessionResponse{Token: respBody.Token, User: respBody.User}, nil
}

func (a *Api) ChangePassword(ctx context.Context, req types.ChangePasswordRequest) (string, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/users/changePassword"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return "", &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return "", &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return "", networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return "", HandleApiError(resp, errorBody)
	}

	var respBody types.Envelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return "", &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return "", domainError(resp.StatusCode, respBody.Message)
	}

	return respBody.Message, nil
}

func (a *Api) ListAddressTree(ctx context.Context) ([]*types.Province, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/address"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := unauthenticatedClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.Envelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return nil, domainError(resp.StatusCode, respBody.Message)
	}

	var provinces []*types.Province
	err = json.Unmarshal(respBody.Data, &provinces)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return provinces, nil
}

func (a *Api) ListCitizenPosts(ctx context.Context) ([]*types.Post, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/post/citizen"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.Envelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return nil, domainError(resp.StatusCode, respBody.Message)
	}

	var posts []*types.Post
	err = json.Unmarshal(respBody.Data, &posts)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return posts, nil
}

func (a *Api) GetPost(ctx context.Context, postId int) (*types.Post, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/v1/post/one/%d", GetApiHost(), postId)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.Envelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return nil, domainError(resp.StatusCode, respBody.Message)
	}

	var post types.Post
	err = json.Unmarshal(respBody.Data, &post)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &post, nil
}

func (a *Api) CreateComment(ctx context.Context, req types.CreateCommentRequest) *types.ApiError {
	serverUrl := GetApiHost() + "/api/v1/post/comment"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) ListMyPenalties(ctx context.Context) ([]*types.Penalty, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/penalties/mypenarities"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	// this endpoint replies with a bare array, no envelope
	var penalties []*types.Penalty
	err = json.NewDecoder(resp.Body).Decode(&penalties)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return penalties, nil
}

func (a *Api) PayPenalty(ctx context.Context, req types.PayPenaltyRequest) (string, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/penalties/pay"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return "", &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return "", &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedSlowClient.Do(request)
	if err != nil {
		return "", networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return "", HandleApiError(resp, errorBody)
	}

	var respBody types.Envelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return "", &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return "", domainError(resp.StatusCode, respBody.Message)
	}

	return respBody.Message, nil
}

func (a *Api) ListNotifications(ctx context.Context) ([]*types.Notification, *types.ApiError) {
	serverUrl := GetApiHost() + "/api/v1/notification"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody types.Envelope
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.Success != nil && !*respBody.Success {
		return nil, domainError(resp.StatusCode, respBody.Message)
	}

	var notifications []*types.Notification
	err = json.Unmarshal(respBody.Data, &notifications)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return notifications, nil
}

func (a *Api) MarkNotificationRead(ctx context.Context, notificationId int) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/api/v1/notification/read/%d", GetApiHost(), notificationId)

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, serverUrl, nil)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) DeleteNotification(ctx context.Context, notificationId int) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/api/v1/notification/delete/%d", GetApiHost(), notificationId)

	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}
