package types

const (
	TypeWebsocketPing       = "ping"
	TypeWebsocketPong       = "pong"
	TypeWebsocketProgress   = "progress"
	TypeWebsocketProcessing = "processing"
	TypeWebsocketError      = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Session is the explicit per-client state object passed to each assistant
// call. The assistant itself keeps no state between invocations besides the
// document text the session carries.
type Session struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Document  *Document `json:"-" bson:"-"`
	Summary   string    `json:"summary,omitempty" bson:"summary,omitempty"`
	CreatedAt int64     `json:"created_at" bson:"created_at"`
	UpdatedAt int64     `json:"updated_at" bson:"updated_at"`
}

// ConversationEntry is one answered question, appended to the session history
// after every successful answer.
type ConversationEntry struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	SessionID string `json:"session_id" bson:"session_id"`
	Question  string `json:"question" bson:"question"`
	Answer    string `json:"answer" bson:"answer"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
}
