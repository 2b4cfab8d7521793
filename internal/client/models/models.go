// Package models defines the client-side domain types: the authenticated
// user, the guilds the user belongs to, the channels inside a guild, and
// the messages of a text channel. All types are plain values; ownership of
// the derived sets (guilds/channels/messages plus the current selection)
// belongs to the chat service, everything else treats them as read-only
// snapshots.
package models

// User is the identity the platform reports for the stored credential.
type User struct {
	ID            string
	Username      string
	Discriminator string
	AvatarURL     string
	Email         string
}

// Guild is a server-like container grouping channels and members.
type Guild struct {
	ID      string
	Name    string
	IconURL string
}

// ChannelKind classifies a channel. Only text and voice channels are part
// of the browsing surface; every other platform channel type maps to
// KindUnknown and is dropped before display.
type ChannelKind string

const (
	KindText    ChannelKind = "text"
	KindVoice   ChannelKind = "voice"
	KindUnknown ChannelKind = "unknown"
)

// Channel is a named sub-context within a guild.
type Channel struct {
	ID   string
	Name string
	Kind ChannelKind
}

// Message is a single transcript entry of a text channel. Timestamp is
// kept exactly as the platform returned it (RFC 3339 text).
type Message struct {
	ID        string
	Author    string
	Content   string
	Timestamp string
}

// VoiceRegion describes one of the platform's voice servers.
type VoiceRegion struct {
	ID         string
	Name       string
	Optimal    bool
	Deprecated bool
	Custom     bool
}

// GuildMember is the membership record returned after a voice-channel move.
type GuildMember struct {
	Nick           string
	VoiceChannelID string
	Mute           bool
	Deaf           bool
}

// Selection is the pair of currently active guild and channel. Both fields
// are empty when nothing is selected; ChannelID is only ever set to a
// channel belonging to the last-fetched channel set of GuildID.
type Selection struct {
	GuildID   string
	ChannelID string
}
