package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb "letterbox/proto/exchange"
)

type testLetterExchangeSuite struct {
	BaseGrpcSuite
}

func TestLetterExchangeSuite(t *testing.T) {
	suite.Run(t, &testLetterExchangeSuite{})
}

func (s *testLetterExchangeSuite) TestFullExchangeFlow() {
	idempotencyKey := uuid.New().String()
	var letterID string

	// --- STEP 1: SEND ---
	s.Run("Step 1: Sender posts a letter", func() {
		s.WithExchange("SendLetter", func(ctx context.Context, client pb.ExchangeServiceClient) {
			reply, err := client.SendLetter(ctx, &pb.SendLetterRequest{
				SenderId:       s.Config.SenderID,
				RecipientEmail: s.Config.RecipientEmail,
				Category:       "daily",
				Subject:        "e2e round trip",
				Content:        "written by the scenario suite",
				IdempotencyKey: idempotencyKey,
			})
			s.Require().NoError(err)
			s.Require().NotEmpty(reply.Letter.LetterId)
			s.Require().False(reply.Letter.Read, "A fresh letter must start unread")
			letterID = reply.Letter.LetterId
		})
	})

	// --- STEP 2: IDEMPOTENT RETRY ---
	s.Run("Step 2: Retrying the same key returns the same letter", func() {
		s.WithExchange("SendLetter retry", func(ctx context.Context, client pb.ExchangeServiceClient) {
			reply, err := client.SendLetter(ctx, &pb.SendLetterRequest{
				SenderId:       s.Config.SenderID,
				RecipientEmail: s.Config.RecipientEmail,
				Category:       "daily",
				Subject:        "e2e round trip",
				Content:        "written by the scenario suite",
				IdempotencyKey: idempotencyKey,
			})
			s.Require().NoError(err)
			s.Require().Equal(letterID, reply.Letter.LetterId, "Retry created a duplicate letter")
		})
	})

	// --- STEP 3: INBOX ---
	s.Run("Step 3: Recipient sees the letter in the inbox", func() {
		s.WithExchange("ListInbox", func(ctx context.Context, client pb.ExchangeServiceClient) {
			s.Eventually(func() bool {
				reply, err := client.ListInbox(ctx, &pb.ListRequest{ParticipantId: s.Config.RecipientID})
				if err != nil {
					return false
				}
				for _, letter := range reply.Letters {
					if letter.LetterId == letterID {
						return true
					}
				}
				return false
			}, 10*time.Second, 500*time.Millisecond, "Letter never reached the recipient inbox")
		})
	})

	// --- STEP 4: OPEN ---
	s.Run("Step 4: Recipient opens the letter", func() {
		s.WithExchange("OpenLetter", func(ctx context.Context, client pb.ExchangeServiceClient) {
			reply, err := client.OpenLetter(ctx, &pb.LetterRequest{
				CallerId: s.Config.RecipientID,
				LetterId: letterID,
			})
			s.Require().NoError(err)
			s.Require().True(reply.Letter.Read)
		})
	})

	// --- STEP 5: READ ACKNOWLEDGEMENT ---
	s.Run("Step 5: Sender sees the read flag in the sent view", func() {
		s.WithExchange("ListSent", func(ctx context.Context, client pb.ExchangeServiceClient) {
			s.Eventually(func() bool {
				reply, err := client.ListSent(ctx, &pb.ListRequest{ParticipantId: s.Config.SenderID})
				if err != nil {
					return false
				}
				for _, letter := range reply.Letters {
					if letter.LetterId == letterID {
						return letter.Read
					}
				}
				return false
			}, 10*time.Second, 500*time.Millisecond, "Read flag never propagated to the sender view")
		})
	})

	// --- STEP 6: SEARCH ---
	s.Run("Step 6: Full-text search finds the letter", func() {
		s.WithExchange("SearchLetters", func(ctx context.Context, client pb.ExchangeServiceClient) {
			reply, err := client.SearchLetters(ctx, &pb.SearchRequest{
				ParticipantId: s.Config.RecipientID,
				Role:          "recipient",
				Terms:         "round trip",
			})
			s.Require().NoError(err)
			found := false
			for _, letter := range reply.Letters {
				if letter.LetterId == letterID {
					found = true
				}
			}
			s.Require().True(found, "Search did not return the letter")
		})
	})
}
