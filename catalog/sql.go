package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Schema creates the catalog tables used by SQL.
const Schema = `
CREATE TABLE IF NOT EXISTS Course (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	instructor TEXT NOT NULL,
	category TEXT NOT NULL,
	level TEXT NOT NULL,
	duration TEXT NOT NULL,
	lessons INTEGER NOT NULL,
	rating REAL NOT NULL,
	students INTEGER NOT NULL,
	price INTEGER NOT NULL,
	summary TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS SyllabusItem (
	course_id TEXT NOT NULL REFERENCES Course(id),
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	PRIMARY KEY (course_id, position)
);`

const courseColumns = "id, title, instructor, category, level, duration, lessons, rating, students, price, summary"

// SQL reads the catalog from a sqlite database. It never writes.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(row scanner) (Course, error) {
	var c Course
	err := row.Scan(&c.ID, &c.Title, &c.Instructor, &c.Category, &c.Level, &c.Duration,
		&c.Lessons, &c.Rating, &c.Students, &c.Price, &c.Summary)
	return c, err
}

func (s *SQL) Courses(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+courseColumns+" FROM Course ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *SQL) Course(ctx context.Context, id string) (Course, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courseColumns+" FROM Course WHERE id = ?", id)
	c, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	if err != nil {
		return Course{}, fmt.Errorf("query course %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT title FROM SyllabusItem WHERE course_id = ? ORDER BY position", id)
	if err != nil {
		return Course{}, fmt.Errorf("query syllabus %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return Course{}, fmt.Errorf("scan syllabus %s: %w", id, err)
		}
		c.Syllabus = append(c.Syllabus, item)
	}
	return c, rows.Err()
}

// Seed replaces the catalog contents with courses in one transaction.
func Seed(ctx context.Context, db *sql.DB, courses []Course) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM SyllabusItem"); err != nil {
		return fmt.Errorf("clear syllabus: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM Course"); err != nil {
		return fmt.Errorf("clear courses: %w", err)
	}

	for i, c := range courses {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO Course (id, position, title, instructor, category, level, duration, lessons, rating, students, price, summary) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			c.ID, i, c.Title, c.Instructor, c.Category, c.Level, c.Duration, c.Lessons, c.Rating, c.Students, c.Price, c.Summary)
		if err != nil {
			return fmt.Errorf("insert course %s: %w", c.ID, err)
		}
		for j, item := range c.Syllabus {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO SyllabusItem (course_id, position, title) VALUES (?, ?, ?)", c.ID, j, item)
			if err != nil {
				return fmt.Errorf("insert syllabus %s: %w", c.ID, err)
			}
		}
	}
	return tx.Commit()
}
