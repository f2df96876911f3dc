package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"letterbox/domain"
	"letterbox/errors"
	pb "letterbox/proto/exchange"
	"letterbox/runtime"
	"letterbox/services"
	"letterbox/sink"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ExchangeServer struct {
	pb.UnimplementedExchangeServiceServer
	letterService        services.ILetterService
	dispatcher           *runtime.Dispatcher
	log                  *slog.Logger
	connectionBufferSize int
	deliveryTimeout      time.Duration
}

func NewExchangeServer(log *slog.Logger, letterService services.ILetterService,
	dispatcher *runtime.Dispatcher, connectionBufferSize int, deliveryTimeout time.Duration) *ExchangeServer {
	return &ExchangeServer{
		letterService:        letterService,
		dispatcher:           dispatcher,
		log:                  log,
		connectionBufferSize: connectionBufferSize,
		deliveryTimeout:      deliveryTimeout,
	}
}

func (s *ExchangeServer) SendLetter(ctx context.Context, req *pb.SendLetterRequest) (*pb.LetterReply, error) {
	letter, err := s.letterService.Send(ctx, domain.SendLetterCommand{
		SenderID: req.SenderId,
		Draft: domain.Draft{
			RecipientEmail: req.RecipientEmail,
			Category:       domain.Category(req.Category),
			Subject:        req.Subject,
			Content:        req.Content,
		},
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LetterReply{Letter: toLetterMessage(letter)}, nil
}

func (s *ExchangeServer) GetLetter(ctx context.Context, req *pb.LetterRequest) (*pb.LetterReply, error) {
	cmd, err := toOpenCommand(req)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	letter, err := s.letterService.Get(ctx, cmd)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LetterReply{Letter: toLetterMessage(letter)}, nil
}

func (s *ExchangeServer) OpenLetter(ctx context.Context, req *pb.LetterRequest) (*pb.LetterReply, error) {
	cmd, err := toOpenCommand(req)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	letter, err := s.letterService.Open(ctx, cmd)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LetterReply{Letter: toLetterMessage(letter)}, nil
}

func (s *ExchangeServer) ListInbox(ctx context.Context, req *pb.ListRequest) (*pb.ListReply, error) {
	letters, unread, err := s.letterService.Inbox(ctx, req.ParticipantId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListReply{
		Letters:     toLetterMessages(letters),
		UnreadCount: int64(unread),
	}, nil
}

func (s *ExchangeServer) ListSent(ctx context.Context, req *pb.ListRequest) (*pb.ListReply, error) {
	letters, err := s.letterService.Sent(ctx, req.ParticipantId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListReply{Letters: toLetterMessages(letters)}, nil
}

func (s *ExchangeServer) SearchLetters(ctx context.Context, req *pb.SearchRequest) (*pb.ListReply, error) {
	letters, _, err := s.letterService.Search(ctx, req.ParticipantId, req.Role, req.Terms)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListReply{Letters: toLetterMessages(letters)}, nil
}

// Subscribe attaches a dedicated sink to the dispatcher and forwards
// every snapshot until the client hangs up. Cleanup runs via the
// deferred cancel so the registry never leaks dead streams.
func (s *ExchangeServer) Subscribe(req *pb.SubscribeRequest, stream pb.ExchangeService_SubscribeServer) error {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return errors.MapToGRPCError(err)
	}

	streamSink := sink.NewGrpcSink(s.log, s.connectionBufferSize, s.deliveryTimeout)
	sub := s.dispatcher.Subscribe(stream.Context(), runtime.Filter{
		ParticipantID: req.ParticipantId,
		Role:          role,
	}, streamSink)
	defer sub.Cancel()

	for {
		select {
		case <-stream.Context().Done():
			s.log.Warn(fmt.Sprintf("Client %s disconnected from %s view", req.ParticipantId, role))
			return nil
		case letters := <-streamSink.Snapshots:
			reply := &pb.ListReply{Letters: toLetterMessages(letters)}
			if role == domain.RoleRecipient {
				reply.UnreadCount = int64(lo.CountBy(letters, func(letter domain.Letter) bool { return !letter.Read }))
			}
			if err := stream.Send(reply); err != nil {
				s.log.Error("failed to push snapshot to stream",
					"participant_id", req.ParticipantId,
					"role", role,
					"error", err)
				return err
			}
		}
	}
}

func toOpenCommand(req *pb.LetterRequest) (domain.OpenLetterCommand, error) {
	letterID, err := uuid.Parse(req.LetterId)
	if err != nil {
		return domain.OpenLetterCommand{}, &errors.ValidationError{Field: "LetterId"}
	}
	return domain.OpenLetterCommand{
		CallerID: req.CallerId,
		LetterID: letterID,
	}, nil
}

func toLetterMessages(letters []domain.Letter) []*pb.LetterMessage {
	return lo.Map(letters, func(letter domain.Letter, _ int) *pb.LetterMessage {
		return toLetterMessage(letter)
	})
}

func toLetterMessage(letter domain.Letter) *pb.LetterMessage {
	return &pb.LetterMessage{
		LetterId:       letter.ID.String(),
		SenderId:       letter.SenderID,
		SenderEmail:    letter.SenderEmail,
		SenderName:     letter.SenderName,
		RecipientId:    letter.RecipientID,
		RecipientEmail: letter.RecipientEmail,
		RecipientName:  letter.RecipientName,
		Category:       string(letter.Category),
		Subject:        letter.Subject,
		Content:        letter.Content,
		SentAt:         timestamppb.New(letter.SentAt),
		Read:           letter.Read,
	}
}
