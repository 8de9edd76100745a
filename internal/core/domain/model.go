package domain

// Message is a platform-neutral command invocation. Text carries the command text with the
// addressing prefix (bot mention or slash) already removed. CommandPrefix is what the user
// types in front of a command on the originating platform; empty means mention the bot.
type Message struct {
	ID            string
	ChatID        string
	UserID        string
	Username      string
	Text          string
	CommandPrefix string
}

// Invocation is what a handler is called with: its own descriptor, the argument text that
// followed the command name and the originating message.
type Invocation struct {
	Command Command
	Args    string
	Message *Message
}

type DistroResponse struct {
	Success bool         `json:"success"`
	Distro  []DistroUser `json:"distro"`
}

type DistroUser struct {
	BitcoinAddress  string  `json:"bitcoinAddress"`
	PointsGained    float64 `json:"pointsGained"`
	WorkUnitsGained float64 `json:"workUnitsGained"`
	Amount          float64 `json:"amount"`
}

type MembersResponse struct {
	Success bool     `json:"success"`
	Members []Member `json:"members"`
}

type Member struct {
	UserName string `json:"userName"`
}
