package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TopicRepository handles topic data access.
type TopicRepository struct {
	pool *pgxpool.Pool
}

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

// Create inserts a new topic.
func (r *TopicRepository) Create(ctx context.Context, t *model.Topic) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO topics (topic_name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
}

// List retrieves all topics.
func (r *TopicRepository) List(ctx context.Context) ([]model.Topic, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, topic_name FROM topics ORDER BY topic_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// Delete removes a topic by ID.
func (r *TopicRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM topics WHERE id = $1`, id)
	return err
}
