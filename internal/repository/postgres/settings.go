package postgres

import (
	"database/sql"

	"memorizer/internal/domain"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetSettings returns stored settings or defaults when the row is absent
func (r *SettingsRepo) GetSettings(userID int64) (domain.Settings, error) {
	query := `
		SELECT user_id, language, reminder_enabled, reminder_hour, reminder_minute
		FROM user_settings
		WHERE user_id = $1
	`
	var s domain.Settings
	var lang string
	err := r.db.QueryRow(query, userID).Scan(
		&s.UserID, &lang, &s.ReminderEnabled, &s.ReminderHour, &s.ReminderMinute,
	)

	if err == sql.ErrNoRows {
		return domain.DefaultSettings(userID), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}

	s.Language = domain.ParseLanguage(lang)
	return s, nil
}

// SaveLanguage stores the interface language
func (r *SettingsRepo) SaveLanguage(userID int64, lang domain.Language) error {
	query := `
		INSERT INTO user_settings (user_id, language)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET language = EXCLUDED.language
	`
	_, err := r.db.Exec(query, userID, string(lang))
	return err
}

// SaveReminder stores the daily reminder switch and time
func (r *SettingsRepo) SaveReminder(userID int64, enabled bool, hour, minute int) error {
	query := `
		INSERT INTO user_settings (user_id, reminder_enabled, reminder_hour, reminder_minute)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET reminder_enabled = EXCLUDED.reminder_enabled,
			reminder_hour = EXCLUDED.reminder_hour,
			reminder_minute = EXCLUDED.reminder_minute
	`
	_, err := r.db.Exec(query, userID, enabled, hour, minute)
	return err
}

// GetDueReminders returns settings of authorized users whose reminder is at hour:minute
func (r *SettingsRepo) GetDueReminders(hour, minute int) ([]domain.Settings, error) {
	query := `
		SELECT s.user_id, s.language, s.reminder_enabled, s.reminder_hour, s.reminder_minute
		FROM user_settings s
		JOIN users u ON u.user_id = s.user_id
		WHERE s.reminder_enabled = TRUE
			AND u.authorized = TRUE
			AND s.reminder_hour = $1
			AND s.reminder_minute = $2
	`

	rows, err := r.db.Query(query, hour, minute)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []domain.Settings
	for rows.Next() {
		var s domain.Settings
		var lang string
		if err := rows.Scan(&s.UserID, &lang, &s.ReminderEnabled, &s.ReminderHour, &s.ReminderMinute); err != nil {
			return nil, err
		}
		s.Language = domain.ParseLanguage(lang)
		due = append(due, s)
	}

	return due, rows.Err()
}
