package gomoku

// Player holds a display name and the piece the player places.
type Player struct {
	Name  string `json:"name"`
	Piece Piece  `json:"piece"`
}

// Roster keeps both players and whose turn it is. Black always starts.
type Roster struct {
	players [2]Player
	current int
}

func NewRoster(blackName, whiteName string) Roster {
	return Roster{
		players: [2]Player{
			{Name: blackName, Piece: Black},
			{Name: whiteName, Piece: White},
		},
	}
}

func (that *Roster) Current() Player {
	return that.players[that.current]
}

// Switch hands the turn to the other player.
func (that *Roster) Switch() {
	that.current = 1 - that.current
}

// Player returns the player placing the given piece.
func (that *Roster) Player(piece Piece) (Player, bool) {
	for _, player := range that.players {
		if player.Piece == piece {
			return player, true
		}
	}

	return Player{}, false
}
