package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"presscraft/internal/api/repository"
	"presscraft/internal/entity"
	"presscraft/pkg/newssearch"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID uint
	events map[uint]entity.PREvent
	err    error
}

func newFakeEventRepo(events ...entity.PREvent) *fakeEventRepo {
	r := &fakeEventRepo{events: map[uint]entity.PREvent{}}
	for _, ev := range events {
		if ev.ID > r.nextID {
			r.nextID = ev.ID
		}
		r.events[ev.ID] = ev
	}
	return r
}

func (r *fakeEventRepo) FindAll(_ context.Context, filter repository.EventFilter) ([]entity.PREvent, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.PREvent
	for _, ev := range r.events {
		if !filter.From.IsZero() && ev.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && ev.Date.After(filter.To) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (*entity.PREvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ev, nil
}

func (r *fakeEventRepo) Save(_ context.Context, event *entity.PREvent) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == 0 {
		r.nextID++
		event.ID = r.nextID
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeSubscriptionRepo struct {
	subs      map[uint]entity.ClippingSubscription
	nextID    uint
	updated   []entity.ClippingSubscription
	findDueAt time.Time
}

func newFakeSubscriptionRepo(subs ...entity.ClippingSubscription) *fakeSubscriptionRepo {
	r := &fakeSubscriptionRepo{subs: map[uint]entity.ClippingSubscription{}}
	for _, s := range subs {
		r.subs[s.ID] = s
		if s.ID > r.nextID {
			r.nextID = s.ID
		}
	}
	return r
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *entity.ClippingSubscription) error {
	r.nextID++
	sub.ID = r.nextID
	r.subs[sub.ID] = *sub
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(_ context.Context, id uint) (*entity.ClippingSubscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeSubscriptionRepo) FindAll(_ context.Context) ([]entity.ClippingSubscription, error) {
	var out []entity.ClippingSubscription
	for _, s := range r.subs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *entity.ClippingSubscription) error {
	r.subs[sub.ID] = *sub
	r.updated = append(r.updated, *sub)
	return nil
}

func (r *fakeSubscriptionRepo) FindDue(ctx context.Context, now time.Time) ([]entity.ClippingSubscription, error) {
	r.findDueAt = now
	all, _ := r.FindAll(ctx)
	var out []entity.ClippingSubscription
	for _, s := range all {
		if s.IsActive && (!s.NextExecution.Valid || !s.NextExecution.Time.After(now)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.subs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.subs, id)
	return nil
}

type fakeRunRepo struct {
	runs    []entity.ClippingRun
	updated []entity.ClippingRun
}

func (r *fakeRunRepo) Create(_ context.Context, run *entity.ClippingRun) error {
	run.ID = uint(len(r.runs) + 1)
	r.runs = append(r.runs, *run)
	return nil
}

func (r *fakeRunRepo) FindAllBySubscriptionID(_ context.Context, id uint, _ int) ([]entity.ClippingRun, error) {
	var out []entity.ClippingRun
	for i := len(r.runs) - 1; i >= 0; i-- {
		if r.runs[i].SubscriptionID == id {
			out = append(out, r.runs[i])
		}
	}
	return out, nil
}

func (r *fakeRunRepo) Update(_ context.Context, run *entity.ClippingRun) error {
	r.updated = append(r.updated, *run)
	return nil
}

type fakeAI struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeAI) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

func (f *fakeAI) Provider() string { return "fake" }

type fakeScraper struct {
	page *repository.ScrapedPage
	err  error
}

func (f *fakeScraper) Scrape(_ context.Context, url string) (*repository.ScrapedPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := *f.page
	p.URL = url
	return &p, nil
}

type fakeExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, fileName string, _ []byte) (string, error) {
	if err, ok := f.errs[fileName]; ok {
		return "", err
	}
	if text, ok := f.texts[fileName]; ok {
		return text, nil
	}
	return "", errors.New("no fixture for " + fileName)
}

type fakePublisher struct {
	args []*redis.XAddArgs
	err  error
}

func (f *fakePublisher) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

type fakeSearcher struct {
	pages map[int][]entity.NewsItem
	calls int
}

func (f *fakeSearcher) Search(_ context.Context, _ string, _ newssearch.Sort, page int) (newssearch.Page, error) {
	f.calls++
	return newssearch.Page{Items: f.pages[page], Fetched: len(f.pages[page])}, nil
}
