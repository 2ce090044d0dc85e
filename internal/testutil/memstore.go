// Package testutil provides an in-memory stand-in for the PostgreSQL repositories.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
)

// Operation names accepted by Store.FailOn
const (
	OpCourseExists               = "courses.exists"
	OpCountBySource              = "courses.count_by_source"
	OpCreateReview               = "reviews.create"
	OpReviewExists               = "reviews.exists"
	OpListReviews                = "reviews.list"
	OpCreateReaction             = "reactions.create"
	OpReactionExists             = "reactions.exists"
	OpTypeExists                 = "reactions.type_exists"
	OpListReactions              = "reactions.list"
	OpCreateReviewReaction       = "review_reactions.create"
	OpListReviewReactions        = "review_reactions.list"
	OpCreatePrerequisite         = "prerequisites.create"
	OpPrerequisiteExists         = "prerequisites.exists"
	OpListPrerequisites          = "prerequisites.list"
	OpCreatePrerequisiteReaction = "prerequisite_reactions.create"
	OpListPrerequisiteReactions  = "prerequisite_reactions.list"
)

// Store keeps every table in memory. The typed views returned by its accessor
// methods implement the service store interfaces and share one lock, so a
// failed two-row insert leaves nothing behind just like a rolled back transaction.
type Store struct {
	mu sync.Mutex

	courses               map[int64]models.Course
	reviews               map[int64]models.Review
	courseReviews         []models.CourseReview
	reactions             map[int64]models.Reaction
	reviewReactions       []models.ReviewReaction
	prerequisites         map[int64]models.Prerequisite
	coursePrerequisites   map[int64]models.CoursePrerequisite
	prerequisiteReactions []models.CoursePrerequisiteReaction

	nextID   int64
	failures map[string]error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		courses:             make(map[int64]models.Course),
		reviews:             make(map[int64]models.Review),
		reactions:           make(map[int64]models.Reaction),
		prerequisites:       make(map[int64]models.Prerequisite),
		coursePrerequisites: make(map[int64]models.CoursePrerequisite),
		failures:            make(map[string]error),
	}
}

// FailOn makes every later call of op return err. A nil err clears the failure.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// failure must be called with mu held
func (s *Store) failure(op string) error {
	return s.failures[op]
}

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}

// AddCourse inserts a catalog course and returns its id
func (s *Store) AddCourse(source models.CourseSource, title string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.courses[id] = models.Course{ID: id, Source: source, ExternalID: fmt.Sprintf("ext-%d", id), Title: title}
	return id
}

// Row counts used by assertions

func (s *Store) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

func (s *Store) CourseReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.courseReviews)
}

func (s *Store) ReactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reactions)
}

func (s *Store) ReviewReactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviewReactions)
}

func (s *Store) PrerequisiteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prerequisites)
}

func (s *Store) CoursePrerequisiteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.coursePrerequisites)
}

func (s *Store) PrerequisiteReactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prerequisiteReactions)
}

// Typed views

func (s *Store) Courses() *CourseStore                 { return &CourseStore{s} }
func (s *Store) Reviews() *ReviewStore                 { return &ReviewStore{s} }
func (s *Store) Reactions() *ReactionStore             { return &ReactionStore{s} }
func (s *Store) ReviewReactions() *ReviewReactionStore { return &ReviewReactionStore{s} }
func (s *Store) Prerequisites() *PrerequisiteStore     { return &PrerequisiteStore{s} }
func (s *Store) PrerequisiteReactions() *PrerequisiteReactionStore {
	return &PrerequisiteReactionStore{s}
}

// CourseStore is the course view of Store
type CourseStore struct{ s *Store }

func (c *CourseStore) CourseExists(_ context.Context, id int64) (bool, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if err := c.s.failure(OpCourseExists); err != nil {
		return false, err
	}
	_, ok := c.s.courses[id]
	return ok, nil
}

func (c *CourseStore) CountBySource(_ context.Context) (map[models.CourseSource]int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if err := c.s.failure(OpCountBySource); err != nil {
		return nil, err
	}
	counts := make(map[models.CourseSource]int64)
	for _, course := range c.s.courses {
		counts[course.Source]++
	}
	return counts, nil
}

// ReviewStore is the review view of Store
type ReviewStore struct{ s *Store }

func (r *ReviewStore) CreateForCourse(_ context.Context, courseID int64, review *models.Review) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpCreateReview); err != nil {
		return 0, err
	}
	if _, ok := r.s.courses[courseID]; !ok {
		return 0, fmt.Errorf("course_reviews: course %d violates foreign key", courseID)
	}
	review.ID = r.s.newID()
	r.s.reviews[review.ID] = *review
	r.s.courseReviews = append(r.s.courseReviews, models.CourseReview{
		ID: r.s.newID(), CourseID: courseID, ReviewID: review.ID,
	})
	return review.ID, nil
}

func (r *ReviewStore) ReviewExists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpReviewExists); err != nil {
		return false, err
	}
	_, ok := r.s.reviews[id]
	return ok, nil
}

func (r *ReviewStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpListReviews); err != nil {
		return nil, err
	}
	reviews := []*models.Review{}
	for _, cr := range r.s.courseReviews {
		if cr.CourseID != courseID {
			continue
		}
		review := r.s.reviews[cr.ReviewID]
		reviews = append(reviews, &review)
	}
	return reviews, nil
}

// ReactionStore is the reaction view of Store
type ReactionStore struct{ s *Store }

func (r *ReactionStore) CreateReaction(_ context.Context, reaction *models.Reaction) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpCreateReaction); err != nil {
		return 0, err
	}
	for _, existing := range r.s.reactions {
		if existing.Type == reaction.Type {
			return 0, apperrors.ErrReactionTypeExists
		}
	}
	reaction.ID = r.s.newID()
	r.s.reactions[reaction.ID] = *reaction
	return reaction.ID, nil
}

func (r *ReactionStore) ReactionExists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpReactionExists); err != nil {
		return false, err
	}
	_, ok := r.s.reactions[id]
	return ok, nil
}

func (r *ReactionStore) TypeExists(_ context.Context, reactionType string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpTypeExists); err != nil {
		return false, err
	}
	for _, existing := range r.s.reactions {
		if existing.Type == reactionType {
			return true, nil
		}
	}
	return false, nil
}

func (r *ReactionStore) GetAllReactions(_ context.Context) ([]*models.Reaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpListReactions); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(r.s.reactions))
	for id := range r.s.reactions {
		ids = append(ids, id)
	}
	return r.s.reactionsByID(ids), nil
}

// reactionsByID must be called with mu held. Output is ordered by id.
func (s *Store) reactionsByID(ids []int64) []*models.Reaction {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	reactions := make([]*models.Reaction, 0, len(ids))
	for _, id := range ids {
		reaction := s.reactions[id]
		reactions = append(reactions, &reaction)
	}
	return reactions
}

// ReviewReactionStore is the review reaction view of Store
type ReviewReactionStore struct{ s *Store }

func (r *ReviewReactionStore) CreateReviewReaction(_ context.Context, rr *models.ReviewReaction) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpCreateReviewReaction); err != nil {
		return 0, err
	}
	if _, ok := r.s.reviews[rr.ReviewID]; !ok {
		return 0, fmt.Errorf("review_reactions: review %d violates foreign key", rr.ReviewID)
	}
	if _, ok := r.s.reactions[rr.ReactionID]; !ok {
		return 0, fmt.Errorf("review_reactions: reaction %d violates foreign key", rr.ReactionID)
	}
	rr.ID = r.s.newID()
	r.s.reviewReactions = append(r.s.reviewReactions, *rr)
	return rr.ID, nil
}

func (r *ReviewReactionStore) GetReactionsByReviewID(_ context.Context, reviewID int64) ([]*models.Reaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(OpListReviewReactions); err != nil {
		return nil, err
	}
	var ids []int64
	for _, rr := range r.s.reviewReactions {
		if rr.ReviewID == reviewID {
			ids = append(ids, rr.ReactionID)
		}
	}
	return r.s.reactionsByID(ids), nil
}

// PrerequisiteStore is the prerequisite view of Store
type PrerequisiteStore struct{ s *Store }

func (p *PrerequisiteStore) CreateForCourse(_ context.Context, courseID int64, prerequisite *models.Prerequisite) (*models.CoursePrerequisite, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.failure(OpCreatePrerequisite); err != nil {
		return nil, err
	}
	if _, ok := p.s.courses[courseID]; !ok {
		return nil, fmt.Errorf("course_prerequisites: course %d violates foreign key", courseID)
	}
	prerequisite.ID = p.s.newID()
	p.s.prerequisites[prerequisite.ID] = *prerequisite
	cp := models.CoursePrerequisite{
		ID:             p.s.newID(),
		CourseID:       courseID,
		PrerequisiteID: prerequisite.ID,
		Content:        prerequisite.Content,
	}
	p.s.coursePrerequisites[cp.ID] = cp
	return &cp, nil
}

func (p *PrerequisiteStore) CoursePrerequisiteExists(_ context.Context, id int64) (bool, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.failure(OpPrerequisiteExists); err != nil {
		return false, err
	}
	_, ok := p.s.coursePrerequisites[id]
	return ok, nil
}

func (p *PrerequisiteStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.CoursePrerequisite, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.failure(OpListPrerequisites); err != nil {
		return nil, err
	}
	list := []*models.CoursePrerequisite{}
	for _, cp := range p.s.coursePrerequisites {
		if cp.CourseID == courseID {
			cp := cp
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// PrerequisiteReactionStore is the prerequisite reaction view of Store
type PrerequisiteReactionStore struct{ s *Store }

func (p *PrerequisiteReactionStore) CreatePrerequisiteReaction(_ context.Context, pr *models.CoursePrerequisiteReaction) (int64, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.failure(OpCreatePrerequisiteReaction); err != nil {
		return 0, err
	}
	if _, ok := p.s.coursePrerequisites[pr.CoursePrerequisiteID]; !ok {
		return 0, fmt.Errorf("course_prerequisite_reactions: course prerequisite %d violates foreign key", pr.CoursePrerequisiteID)
	}
	if _, ok := p.s.reactions[pr.ReactionID]; !ok {
		return 0, fmt.Errorf("course_prerequisite_reactions: reaction %d violates foreign key", pr.ReactionID)
	}
	pr.ID = p.s.newID()
	p.s.prerequisiteReactions = append(p.s.prerequisiteReactions, *pr)
	return pr.ID, nil
}

func (p *PrerequisiteReactionStore) GetReactionsByCoursePrerequisiteID(_ context.Context, coursePrerequisiteID int64) ([]*models.Reaction, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.failure(OpListPrerequisiteReactions); err != nil {
		return nil, err
	}
	var ids []int64
	for _, pr := range p.s.prerequisiteReactions {
		if pr.CoursePrerequisiteID == coursePrerequisiteID {
			ids = append(ids, pr.ReactionID)
		}
	}
	return p.s.reactionsByID(ids), nil
}
