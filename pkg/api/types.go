package api

// Admin is the authenticated admin identity from /admin/me.
type Admin struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Role    string `json:"role"` // admin, master_admin or krown_admin
}

type adminMeResponse struct {
	Data *Admin `json:"data"`
}

// verifyOTPResponse carries the token under data; recovery_pass is only
// present on first-time logins.
type verifyOTPResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
	RecoveryPass string `json:"recovery_pass"`
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type recoveryLoginRequest struct {
	Phone        string `json:"phone"`
	RecoveryPass string `json:"recovery_pass"`
}

// Cafe is one café record from /admin/cafe_name/list.
type Cafe struct {
	CafeID          string `json:"cafe_id"`
	CafeName        string `json:"cafe_name"`
	CafeLocation    string `json:"cafe_location"`
	CafeDescription string `json:"cafe_description,omitempty"`
	CafeMobileNo    string `json:"cafe_mobile_no"`
	CafeUpiID       string `json:"cafe_upi_id"`
	OpeningTime     string `json:"opening_time"`
	ClosingTime     string `json:"closing_time"`
}

type cafeListResponse struct {
	Data []Cafe `json:"data"`
}

// CreateCafeInput is the payload for /admin/cafe/create.
type CreateCafeInput struct {
	CafeName        string `json:"cafe_name"`
	CafeLocation    string `json:"cafe_location"`
	CafeDescription string `json:"cafe_description,omitempty"`
	CafeMobileNo    string `json:"cafe_mobile_no"`
	CafeUpiID       string `json:"cafe_upi_id"`
	OpeningTime     string `json:"opening_time"`
	ClosingTime     string `json:"closing_time"`
}

// CafeUser is a café staff login account.
type CafeUser struct {
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	UserMobileNo  string `json:"user_mobile_no"`
	LoginUserName string `json:"login_user_name"`
	CafeID        string `json:"cafe_id"`
	CafeName      string `json:"cafe_name,omitempty"`
}

type cafeUserListResponse struct {
	Data []CafeUser `json:"data"`
}

// CreateCafeUserInput is the payload for /admin/cafe/user/create.
type CreateCafeUserInput struct {
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	UserMobileNo  string `json:"user_mobile_no"`
	LoginUserName string `json:"login_user_name"`
	PasswordHash  string `json:"password_hash"`
	CafeID        string `json:"cafe_id"`
}

// UpdateCafeUserInput is the payload for /admin/cafe/user/update.
type UpdateCafeUserInput struct {
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name,omitempty"`
	UserEmail     string `json:"user_email,omitempty"`
	UserMobileNo  string `json:"user_mobile_no,omitempty"`
	LoginUserName string `json:"login_user_name,omitempty"`
	PasswordHash  string `json:"password_hash,omitempty"`
}

// Banner is one promotional banner image.
type Banner struct {
	ImageID   string `json:"image_id"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

type bannerListResponse struct {
	Data []Banner `json:"data"`
}

// PlanFeature is one line item of a subscription plan.
type PlanFeature struct {
	FeatureText string `json:"feature_text"`
	IconURL     string `json:"icon_url,omitempty"`
}

// SubscriptionPlan is one subscription plan record.
type SubscriptionPlan struct {
	SubscriptionID string        `json:"subscription_id"`
	PlanName       string        `json:"plan_name"`
	Price          float64       `json:"price"`
	DurationDays   int           `json:"duration_days"`
	Features       []PlanFeature `json:"features"`
	IsActive       bool          `json:"is_active"`
}

type subscriptionListResponse struct {
	Data []SubscriptionPlan `json:"data"`
}

// PushUser is a push-notification recipient.
type PushUser struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserMobileNo string `json:"user_mobile_no"`
}

type pushUsersResponse struct {
	Users []PushUser `json:"users"`
}

// PushMessage is a notification payload. Data is a free-form JSON object
// forwarded to the device.
type PushMessage struct {
	UserID string                 `json:"user_id,omitempty"`
	Title  string                 `json:"title"`
	Body   string                 `json:"body"`
	Data   map[string]interface{} `json:"data"`
}
