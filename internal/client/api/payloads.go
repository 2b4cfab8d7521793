package api

// Wire shapes of the platform's REST responses. Only the fields the client
// consumes are declared; everything else in the payload is ignored on decode.

type userPayload struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
	Email         string `json:"email"`
}

type guildPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type channelPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

type messageAuthor struct {
	Username string `json:"username"`
}

type messagePayload struct {
	ID        string        `json:"id"`
	Author    messageAuthor `json:"author"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"`
}

type voiceRegionPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Optimal    bool   `json:"optimal"`
	Deprecated bool   `json:"deprecated"`
	Custom     bool   `json:"custom"`
}

type memberPayload struct {
	Nick      string `json:"nick"`
	ChannelID string `json:"channel_id"`
	Mute      bool   `json:"mute"`
	Deaf      bool   `json:"deaf"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
	Nonce   string `json:"nonce"`
}

type moveMemberRequest struct {
	ChannelID string `json:"channel_id"`
}
