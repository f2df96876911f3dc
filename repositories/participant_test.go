package repositories

import (
	"testing"

	"letterbox/errors"

	"github.com/stretchr/testify/require"
)

func Test_Create_Then_Get_Participant(t *testing.T) {
	req := require.New(t)
	repository := NewParticipantRepository(openTestDB(t))

	created, err := repository.Create("alice@example.com", "Alice")
	req.NoError(err)
	req.NotEmpty(created.ID)

	fetched, err := repository.Get(created.ID)
	req.NoError(err)
	req.Equal(created, fetched)
}

func Test_Get_Unknown_Participant(t *testing.T) {
	req := require.New(t)
	repository := NewParticipantRepository(openTestDB(t))

	_, err := repository.Get("nope")
	req.ErrorIs(err, errors.ErrParticipantNotFound)
}

func Test_List_By_Email_Registration_Order(t *testing.T) {
	req := require.New(t)
	repository := NewParticipantRepository(openTestDB(t))

	first, err := repository.Create("shared@example.com", "First")
	req.NoError(err)
	second, err := repository.Create("shared@example.com", "Second")
	req.NoError(err)
	_, err = repository.Create("other@example.com", "Other")
	req.NoError(err)

	participants, err := repository.ListByEmail("shared@example.com")
	req.NoError(err)
	req.Equal([]string{first.ID, second.ID}, []string{participants[0].ID, participants[1].ID})
	req.Len(participants, 2)
}

func Test_List_By_Email_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewParticipantRepository(openTestDB(t))

	participants, err := repository.ListByEmail("ghost@example.com")
	req.NoError(err)
	req.Empty(participants)
}
