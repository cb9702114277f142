package whatsapp

type apiMessageRequest struct {
	MessagingProduct string  `json:"messaging_product"`
	To               string  `json:"to"`
	Type             string  `json:"type"`
	Text             apiText `json:"text"`
}

type apiText struct {
	Body string `json:"body"`
}

type apiMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message      string `json:"message"`
	ErrorUserMsg string `json:"error_user_msg"`
	Code         int    `json:"code"`
}
