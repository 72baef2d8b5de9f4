package jobs

import (
	"context"
	"fmt"
	"time"

	"agrimarket-backend/internal/logger"
)

// StartDueReservations moves confirmed reservations whose start date
// has arrived into en_cours and flags their equipment as rented.
func (jr *JobRunner) StartDueReservations() {
	jr.runWithRecovery("StartDueReservations", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		query := `
			UPDATE reservations_equipements
			SET statut = 'en_cours',
			    updated_on = NOW()
			WHERE statut = 'confirmee'
			  AND date_debut <= $1
			RETURNING id, equipement_id, locataire_id
		`
		started := jr.collectTransitions(ctx, query, today)
		for _, t := range started {
			if _, err := jr.db.ExecContext(ctx,
				`UPDATE equipements SET statut = 'loue' WHERE id = $1 AND statut = 'disponible'`,
				t.equipmentID); err != nil {
				logger.Error("Failed to flag equipment as rented", "equipment_id", t.equipmentID, "error", err)
			}
			jr.notify(ctx, t.userID, "Location demarree",
				fmt.Sprintf("Votre reservation %d est maintenant en cours.", t.id))
		}
		logger.Info("Started due reservations", "count", len(started))
	})
}

// CompleteElapsedReservations closes in-progress reservations past
// their end date and frees their equipment.
func (jr *JobRunner) CompleteElapsedReservations() {
	jr.runWithRecovery("CompleteElapsedReservations", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		query := `
			UPDATE reservations_equipements
			SET statut = 'terminee',
			    updated_on = NOW()
			WHERE statut = 'en_cours'
			  AND date_fin < $1
			RETURNING id, equipement_id, locataire_id
		`
		completed := jr.collectTransitions(ctx, query, today)
		for _, t := range completed {
			if _, err := jr.db.ExecContext(ctx,
				`UPDATE equipements SET statut = 'disponible' WHERE id = $1 AND statut = 'loue'`,
				t.equipmentID); err != nil {
				logger.Error("Failed to free equipment", "equipment_id", t.equipmentID, "error", err)
			}
			jr.notify(ctx, t.userID, "Location terminee",
				fmt.Sprintf("Votre reservation %d est terminee. Vous pouvez laisser une evaluation.", t.id))
		}
		logger.Info("Completed elapsed reservations", "count", len(completed))
	})
}

// ExpireStalePending cancels pending requests the owner never answered.
func (jr *JobRunner) ExpireStalePending() {
	jr.runWithRecovery("ExpireStalePending", func() {
		ctx := context.Background()
		days := jr.config.Scheduler.StalePendingExpiryDays
		cutoff := time.Now().UTC().AddDate(0, 0, -days)

		query := `
			UPDATE reservations_equipements
			SET statut = 'annulee',
			    updated_on = NOW()
			WHERE statut = 'en_attente'
			  AND created_on < $1
			RETURNING id, equipement_id, locataire_id
		`
		expired := jr.collectTransitions(ctx, query, cutoff)
		for _, t := range expired {
			jr.notify(ctx, t.userID, "Reservation expiree",
				fmt.Sprintf("Votre demande de reservation %d est restee sans reponse et a ete annulee.", t.id))
		}
		logger.Info("Expired stale pending reservations", "count", len(expired), "older_than_days", days)
	})
}

// RefreshReferenceCache reloads the in-memory reference sets.
func (jr *JobRunner) RefreshReferenceCache() {
	jr.runWithRecovery("RefreshReferenceCache", func() {
		if err := jr.services.References.Refresh(context.Background()); err != nil {
			logger.Error("Reference cache refresh failed", "error", err)
		}
	})
}

type transition struct {
	id          int32
	equipmentID int32
	userID      int32
}

func (jr *JobRunner) collectTransitions(ctx context.Context, query string, arg any) []transition {
	rows, err := jr.db.QueryContext(ctx, query, arg)
	if err != nil {
		logger.Error("Reservation transition query failed", "error", err)
		return nil
	}
	defer rows.Close()

	var out []transition
	for rows.Next() {
		var t transition
		if err := rows.Scan(&t.id, &t.equipmentID, &t.userID); err != nil {
			logger.Error("Failed to scan reservation transition", "error", err)
			continue
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error iterating reservation transitions", "error", err)
	}
	return out
}

func (jr *JobRunner) notify(ctx context.Context, userID int32, title, message string) {
	if jr.services == nil || jr.services.Notifications == nil {
		return
	}
	if err := jr.services.Notifications.Notify(ctx, userID, title, message, nil); err != nil {
		logger.Error("Job notification failed", "user_id", userID, "error", err)
	}
}
