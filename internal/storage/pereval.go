package storage

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/pereval-api/internal/models"
)

const passColumns = `p.id, p.beauty_title, p.title, p.other_titles, p.connect, p.add_time, p.status,
	p.latitude, p.longitude, p.height, p.winter, p.summer, p.autumn, p.spring, p.date_added,
	u.id, u.email, u.phone, u.fam, u.name, u.otc`

// CreatePass сохраняет перевал вместе с пользователем и изображениями и возвращает ID перевала.
// Пользователь с тем же email переиспользуется, его контакты обновляются.
func (s *Storage) CreatePass(ctx context.Context, sub models.Submission) (int64, error) {
	const op = "storage.CreatePass"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if sub.User == nil || sub.Coords == nil ||
		sub.Coords.Latitude == nil || sub.Coords.Longitude == nil || sub.Coords.Height == nil {
		return 0, fmt.Errorf("%s: user and coords are required: %w", op, models.ErrInvalid)
	}
	addTime, err := models.ParseAddTime(sub.AddTime)
	if err != nil {
		return 0, fmt.Errorf("%s: add_time: %w: %w", op, models.ErrInvalid, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var passID int64
	err = s.withTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(tx *sql.Tx) error {
		userID, err := upsertUser(ctx, tx, *sub.User)
		if err != nil {
			return err
		}

		query := `INSERT INTO pereval_added (beauty_title, title, other_titles, connect, add_time,
				      status, user_id, latitude, longitude, height, winter, summer, autumn, spring)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
				  RETURNING id`
		if err = tx.QueryRowContext(ctx, query,
			sub.BeautyTitle, sub.Title, sub.OtherTitles, sub.Connect, addTime,
			models.StatusNew.String(), userID,
			float64(*sub.Coords.Latitude), float64(*sub.Coords.Longitude), int(*sub.Coords.Height),
			sub.Level.Winter, sub.Level.Summer, sub.Level.Autumn, sub.Level.Spring,
		).Scan(&passID); err != nil {
			return err
		}

		for _, img := range sub.Images {
			if !img.Complete() {
				continue
			}
			data, err := hex.DecodeString(img.Data)
			if err != nil {
				return fmt.Errorf("image %q: %w: %w", img.Title, models.ErrInvalid, err)
			}
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO pereval_images (pereval_id, title, img) VALUES ($1, $2, $3)`,
				passID, img.Title, data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, classify(op, err)
	}
	return passID, nil
}

// upsertUser атомарно вставляет пользователя или обновляет контакты существующего.
// Гонки между одновременными заявками с одним email разрешает уникальный индекс.
func upsertUser(ctx context.Context, tx *sql.Tx, u models.UserInput) (int64, error) {
	query := `INSERT INTO users (email, phone, fam, name, otc)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (email) DO UPDATE
			  SET phone = EXCLUDED.phone, fam = EXCLUDED.fam, name = EXCLUDED.name, otc = EXCLUDED.otc
			  RETURNING id`
	var id int64
	if err := tx.QueryRowContext(ctx, query, u.Email, u.Phone, u.Fam, u.Name, u.Otc).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetPass возвращает перевал по ID вместе с контактами владельца и изображениями.
func (s *Storage) GetPass(ctx context.Context, id int64) (*models.Pass, error) {
	const op = "storage.GetPass"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var pass *models.Pass
	err := s.withTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+passColumns+`
			FROM pereval_added p
			JOIN users u ON p.user_id = u.id
			WHERE p.id = $1`, id)
		p, err := scanPass(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrPassNotFound
		}
		if err != nil {
			return err
		}

		images, err := fetchImages(ctx, tx, []int64{p.ID})
		if err != nil {
			return err
		}
		p.Images = images[p.ID]
		pass = p
		return nil
	})
	if err != nil {
		return nil, classify(op, err)
	}
	return pass, nil
}

// ListPassesByEmail возвращает перевалы пользователя с указанным email, новые первыми.
// Для неизвестного email возвращается пустой список.
func (s *Storage) ListPassesByEmail(ctx context.Context, email string) ([]models.Pass, error) {
	const op = "storage.ListPassesByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result := make([]models.Pass, 0)
	err := s.withTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT `+passColumns+`
			FROM pereval_added p
			JOIN users u ON p.user_id = u.id
			WHERE u.email = $1
			ORDER BY p.date_added DESC, p.id DESC`, email)
		if err != nil {
			return err
		}
		defer func() {
			_ = rows.Close()
		}()

		var ids []int64
		for rows.Next() {
			p, err := scanPass(rows)
			if err != nil {
				return err
			}
			result = append(result, *p)
			ids = append(ids, p.ID)
		}
		if err = rows.Err(); err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		images, err := fetchImages(ctx, tx, ids)
		if err != nil {
			return err
		}
		for i := range result {
			result[i].Images = images[result[i].ID]
		}
		return nil
	})
	if err != nil {
		return nil, classify(op, err)
	}
	return result, nil
}

// UpdatePass частично обновляет перевал. Строка блокируется (FOR UPDATE) до конца
// транзакции, поэтому проверка статуса и запись не пересекаются с другими правками.
func (s *Storage) UpdatePass(ctx context.Context, id int64, upd models.PassUpdate) error {
	const op = "storage.UpdatePass"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.withTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(tx *sql.Tx) error {
		var rawStatus string
		var owner models.User
		err := tx.QueryRowContext(ctx, `SELECT p.status, u.id, u.email, u.phone, u.fam, u.name, u.otc
			FROM pereval_added p
			JOIN users u ON p.user_id = u.id
			WHERE p.id = $1
			FOR UPDATE OF p`, id).
			Scan(&rawStatus, &owner.ID, &owner.Email, &owner.Phone, &owner.Fam, &owner.Name, &owner.Otc)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrPassNotFound
		}
		if err != nil {
			return err
		}

		status, err := models.ParseStatus(rawStatus)
		if err != nil {
			return err
		}
		if !status.Editable() {
			return models.ErrPassNotEditable
		}
		if upd.User != nil && !upd.User.Matches(owner) {
			return models.ErrOwnerMismatch
		}

		changes, err := upd.Changes()
		if err != nil {
			return fmt.Errorf("%w: %w", models.ErrInvalid, err)
		}
		if len(changes) == 0 {
			return models.ErrNothingToUpdate
		}

		query, args := buildUpdate(id, changes)
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return classify(op, err)
	}
	return nil
}

// buildUpdate собирает UPDATE только по переданным колонкам.
// Имена колонок приходят из models.PassUpdate.Changes, а не от клиента.
func buildUpdate(id int64, changes []models.FieldChange) (string, []any) {
	sets := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)+1)
	for i, c := range changes {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Column, i+1))
		args = append(args, c.Value)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE pereval_added SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPass(row scanner) (*models.Pass, error) {
	var p models.Pass
	var addTime time.Time
	var status string
	if err := row.Scan(&p.ID, &p.BeautyTitle, &p.Title, &p.OtherTitles, &p.Connect, &addTime, &status,
		&p.Coords.Latitude, &p.Coords.Longitude, &p.Coords.Height,
		&p.Level.Winter, &p.Level.Summer, &p.Level.Autumn, &p.Level.Spring, &p.DateAdded,
		&p.User.ID, &p.User.Email, &p.User.Phone, &p.User.Fam, &p.User.Name, &p.User.Otc,
	); err != nil {
		return nil, err
	}

	st, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	p.Status = st
	p.AddTime = addTime.Format(models.AddTimeLayout)
	p.Images = []models.Image{}
	return &p, nil
}

// fetchImages возвращает изображения перевалов, сгруппированные по ID перевала.
func fetchImages(ctx context.Context, tx *sql.Tx, passIDs []int64) (map[int64][]models.Image, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, pereval_id, title, img
		FROM pereval_images
		WHERE pereval_id = ANY($1)
		ORDER BY id`, passIDs)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[int64][]models.Image, len(passIDs))
	for _, id := range passIDs {
		result[id] = []models.Image{}
	}
	for rows.Next() {
		var img models.Image
		var passID int64
		var data []byte
		if err = rows.Scan(&img.ID, &passID, &img.Title, &data); err != nil {
			return nil, err
		}
		img.Data = hex.EncodeToString(data)
		result[passID] = append(result[passID], img)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
