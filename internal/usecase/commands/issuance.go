package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxCreateAttempts bounds regeneration after a duplicate code slips past the
// existence check and is caught by the unique constraint.
const maxCreateAttempts = 3

type IssueRequest struct {
	Code           *string
	Amount         money.Amount
	RecipientEmail string
	RecipientName  string
	SenderName     string
	Message        string
	DeliveryDate   *time.Time
	DesignID       *string
}

type IssueResult struct {
	CertificateID uuid.UUID
	Code          string
	Status        certificate.Status
}

type IssuanceCommands interface {
	Issue(ctx context.Context, req IssueRequest) (*IssueResult, error)
}

type issuanceUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	generator *certificate.CodeGenerator
}

func NewIssuanceUseCase(uow shared.UnitOfWork, clk clock.Clock, generator *certificate.CodeGenerator) IssuanceCommands {
	return &issuanceUseCaseImpl{
		uow:       uow,
		clock:     clk,
		generator: generator,
	}
}

func (uc *issuanceUseCaseImpl) Issue(ctx context.Context, req IssueRequest) (*IssueResult, error) {
	params := certificate.IssueParams{
		Amount:         req.Amount,
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
		SenderName:     req.SenderName,
		Message:        req.Message,
		DeliveryDate:   req.DeliveryDate,
		DesignID:       req.DesignID,
	}
	if err := params.Validate(); err != nil {
		return nil, validation(err)
	}

	code, err := uc.chooseCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		params.Code = code
		cert, err := certificate.NewCertificate(params, uc.clock.Now())
		if err != nil {
			return nil, validation(err)
		}

		err = uc.create(ctx, cert)
		if err == nil {
			slog.Info("certificate issued",
				"certificate_id", cert.ID().String(),
				"code", cert.Code().String(),
				"amount", cert.OriginalAmount().String(),
				"status", cert.Status().String())
			return &IssueResult{
				CertificateID: cert.ID(),
				Code:          cert.Code().String(),
				Status:        cert.Status(),
			}, nil
		}

		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, classify(err)
		}
		if attempt >= maxCreateAttempts {
			return nil, validation(errs.Mark(err, ErrDuplicateCode))
		}

		slog.Warn("certificate code collided at insert, regenerating", "code", code.String(), "attempt", attempt)
		if code, err = uc.generator.Generate(ctx, uc.uow.CommandReads()); err != nil {
			return nil, classify(err)
		}
	}
}

// chooseCode keeps a caller-supplied code when it is well formed and free, and
// generates one otherwise.
func (uc *issuanceUseCaseImpl) chooseCode(ctx context.Context, requested *string) (certificate.Code, error) {
	if requested != nil && strings.TrimSpace(*requested) != "" {
		code, err := certificate.NewCode(*requested)
		if err != nil {
			return "", validation(errs.Mark(err, ErrInvalidCodeFormat))
		}
		taken, err := uc.uow.CommandReads().CodeExists(ctx, code.String())
		if err != nil {
			return "", classify(err)
		}
		if !taken {
			return code, nil
		}
		slog.Info("requested certificate code already taken, generating a new one", "code", code.String())
	}

	code, err := uc.generator.Generate(ctx, uc.uow.CommandReads())
	if err != nil {
		return "", classify(err)
	}
	return code, nil
}

func (uc *issuanceUseCaseImpl) create(ctx context.Context, cert *certificate.Certificate) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Certificates().Create(ctx, tx.DB(), cert); err != nil {
			return err
		}
		event := IssuedEvent{
			CertificateID: cert.ID(),
			Code:          cert.Code().String(),
			Amount:        cert.OriginalAmount(),
			RecipientName: cert.RecipientName().Value(),
			DeliveryDate:  cert.DeliveryDate(),
		}
		return enqueueEvent(ctx, tx, EventKindIssued, event, cert.CreatedAt())
	})
}
