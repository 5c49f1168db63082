package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/contract"
	"legal-ai-be/internal/repository/specification"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory unit of work shared by service tests. It honors the subset of
// specifications the services actually use and records transaction state so
// tests can assert on commit vs rollback.

type fakeUow struct {
	users         []*entity.User
	conversations []*entity.Conversation
	messages      []*entity.Message
	receipts      []*entity.TurnReceipt
	outbox        []*entity.OutboxEvent

	searchSources []entity.Source
	searchErr     error

	nextSeq int64

	began      bool
	committed  bool
	rolledBack bool

	// snapshots taken at Begin, restored on Rollback
	snapMessages []*entity.Message
	snapReceipts []*entity.TurnReceipt
	snapOutbox   []*entity.OutboxEvent
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.began = true
	u.snapMessages = append([]*entity.Message(nil), u.messages...)
	u.snapReceipts = append([]*entity.TurnReceipt(nil), u.receipts...)
	u.snapOutbox = append([]*entity.OutboxEvent(nil), u.outbox...)
	return nil
}

func (u *fakeUow) Commit() error {
	u.committed = true
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.committed {
		return errors.New("no transaction to rollback")
	}
	u.rolledBack = true
	u.messages = u.snapMessages
	u.receipts = u.snapReceipts
	u.outbox = u.snapOutbox
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository { return &fakeUserRepo{u} }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return &fakeConversationRepo{u}
}
func (u *fakeUow) MessageRepository() contract.MessageRepository { return &fakeMessageRepo{u} }
func (u *fakeUow) ArticleRepository() contract.ArticleRepository { return &fakeArticleRepo{u} }
func (u *fakeUow) TurnReceiptRepository() contract.TurnReceiptRepository {
	return &fakeReceiptRepo{u}
}
func (u *fakeUow) OutboxRepository() contract.OutboxRepository { return &fakeOutboxRepo{u} }

// matchSpecs extracts the filters services pass and applies them manually.
func wantID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

func wantOwner(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if owned, ok := s.(specification.OwnedBy); ok {
			return owned.UserID, true
		}
	}
	return uuid.Nil, false
}

func wantConversation(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byConv, ok := s.(specification.ByConversationID); ok {
			return byConv.ConversationID, true
		}
	}
	return uuid.Nil, false
}

type fakeUserRepo struct{ u *fakeUow }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.u.users = append(r.u.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var email string
	for _, s := range specs {
		if byEmail, ok := s.(specification.ByEmail); ok {
			email = byEmail.Email
		}
	}
	for _, user := range r.u.users {
		if email != "" && user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeConversationRepo struct{ u *fakeUow }

func (r *fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.u.conversations = append(r.u.conversations, c)
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	for i, existing := range r.u.conversations {
		if existing.Id == c.Id {
			r.u.conversations[i] = c
			return nil
		}
	}
	return errors.New("conversation not found")
}

func (r *fakeConversationRepo) Touch(ctx context.Context, id uuid.UUID, ts time.Time) error {
	for _, c := range r.u.conversations {
		if c.Id == id {
			if ts.After(c.UpdatedAt) {
				c.UpdatedAt = ts
			}
			return nil
		}
	}
	return errors.New("conversation not found")
}

func (r *fakeConversationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.u.conversations[:0]
	for _, c := range r.u.conversations {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	r.u.conversations = kept
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	id, _ := wantID(specs)
	owner, hasOwner := wantOwner(specs)
	for _, c := range r.u.conversations {
		if c.Id != id {
			continue
		}
		if hasOwner && c.UserId != owner {
			continue
		}
		return c, nil
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	owner, hasOwner := wantOwner(specs)
	var result []*entity.Conversation
	for _, c := range r.u.conversations {
		if hasOwner && c.UserId != owner {
			continue
		}
		result = append(result, c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

type fakeMessageRepo struct{ u *fakeUow }

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.u.nextSeq++
	m.Seq = r.u.nextSeq
	r.u.messages = append(r.u.messages, m)
	return nil
}

func (r *fakeMessageRepo) DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	kept := r.u.messages[:0]
	for _, m := range r.u.messages {
		if m.ConversationId != conversationId {
			kept = append(kept, m)
		}
	}
	r.u.messages = kept
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	id, _ := wantID(specs)
	for _, m := range r.u.messages {
		if m.Id == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	conversationId, _ := wantConversation(specs)

	var result []*entity.Message
	for _, m := range r.u.messages {
		if m.ConversationId == conversationId {
			result = append(result, m)
		}
	}

	var orders []specification.OrderBy
	limit := 0
	for _, s := range specs {
		if order, ok := s.(specification.OrderBy); ok {
			orders = append(orders, order)
		}
		if lim, ok := s.(specification.Limit); ok {
			limit = lim.N
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		for _, order := range orders {
			var cmp int
			switch order.Field {
			case "created_at":
				if result[i].CreatedAt.Before(result[j].CreatedAt) {
					cmp = -1
				} else if result[i].CreatedAt.After(result[j].CreatedAt) {
					cmp = 1
				}
			case "seq":
				if result[i].Seq < result[j].Seq {
					cmp = -1
				} else if result[i].Seq > result[j].Seq {
					cmp = 1
				}
			}
			if cmp == 0 {
				continue
			}
			if order.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	conversationId, _ := wantConversation(specs)
	var count int64
	for _, m := range r.u.messages {
		if m.ConversationId == conversationId {
			count++
		}
	}
	return count, nil
}

type fakeArticleRepo struct{ u *fakeUow }

func (r *fakeArticleRepo) SearchSimilar(ctx context.Context, queryVector []float32, country string, matchCount int) ([]entity.Source, error) {
	if r.u.searchErr != nil {
		return nil, r.u.searchErr
	}
	return r.u.searchSources, nil
}

func (r *fakeArticleRepo) Count(ctx context.Context, country string) (int64, error) {
	return int64(len(r.u.searchSources)), nil
}

func (r *fakeArticleRepo) CreateBatch(ctx context.Context, articles []*entity.Article) error {
	return nil
}

type fakeReceiptRepo struct{ u *fakeUow }

func (r *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.TurnReceipt) error {
	r.u.receipts = append(r.u.receipts, receipt)
	return nil
}

func (r *fakeReceiptRepo) FindByNonce(ctx context.Context, conversationId uuid.UUID, nonce string) (*entity.TurnReceipt, error) {
	for _, receipt := range r.u.receipts {
		if receipt.ConversationId == conversationId && receipt.Nonce == nonce {
			return receipt, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	kept := r.u.receipts[:0]
	for _, receipt := range r.u.receipts {
		if receipt.ConversationId != conversationId {
			kept = append(kept, receipt)
		}
	}
	r.u.receipts = kept
	return nil
}

type fakeOutboxRepo struct{ u *fakeUow }

func (r *fakeOutboxRepo) Create(ctx context.Context, event *entity.OutboxEvent) error {
	r.u.outbox = append(r.u.outbox, event)
	return nil
}

func (r *fakeOutboxRepo) FindUnpublished(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	var result []*entity.OutboxEvent
	for _, e := range r.u.outbox {
		if e.PublishedAt == nil {
			result = append(result, e)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *fakeOutboxRepo) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	for _, e := range r.u.outbox {
		if e.Id == id {
			e.PublishedAt = &at
			return nil
		}
	}
	return errors.New("outbox event not found")
}

// Provider fakes

type fakeEmbeddingProvider struct {
	vector []float32
	err    error
	calls  int
}

func (p *fakeEmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.vector, nil
}

type fakeLLMProvider struct {
	answer   string
	err      error
	calls    int
	received []llm.Message
}

func (p *fakeLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	p.received = history
	if p.err != nil {
		return "", p.err
	}
	return p.answer, nil
}
