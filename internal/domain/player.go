package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Player struct {
	name string
	disc Disc
}

func NewPlayer(name string, disc Disc) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, ErrEmptyPlayerName
	}
	if disc.IsEmpty() {
		return Player{}, errors.Wrapf(ErrNoDisc, "player %q", name)
	}
	return Player{name: name, disc: disc}, nil
}

func (p Player) Name() string {
	return p.name
}

func (p Player) Disc() Disc {
	return p.disc
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.name, p.disc)
}
