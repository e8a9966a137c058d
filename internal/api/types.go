package api

// Optional request fields are pointers without omitempty: the wire contract
// expects absent values to be serialized as JSON null, not dropped.

// VerifyCodeRequest is the POST /api/verify-code request body.
type VerifyCodeRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
}

// VerifyCodeResponse is the POST /api/verify-code response body.
type VerifyCodeResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// SendCodeRequest is the POST /api/send-code request body.
type SendCodeRequest struct {
	PhoneNumber    string  `json:"phone_number"`
	ServiceName    *string `json:"service_name"`
	ExpirationTime *int    `json:"expiration_time"`
	SourceCountry  *string `json:"source_country"`
}

// SendCodeResponse is the POST /api/send-code response body.
type SendCodeResponse struct {
	OK      bool   `json:"ok"`
	Queued  bool   `json:"queued"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSMSRequest is the POST /api/send-sms request body.
type SendSMSRequest struct {
	PhoneNumber   string  `json:"phone_number"`
	Text          string  `json:"text"`
	SourceCountry *string `json:"source_country"`
}

// SendSMSResponse is the POST /api/send-sms response body.
type SendSMSResponse struct {
	OK      bool   `json:"ok"`
	Queued  bool   `json:"queued"`
	Message string `json:"message"`
}
