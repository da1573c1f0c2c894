package constants

const (
	TripStatsByOwner = `
	SELECT status,
	       COUNT(*) AS trip_count,
	       COALESCE(SUM(estimated_total_cost), 0) AS total_cost
	FROM trips
	WHERE owner_id = ?
	GROUP BY status
	`
)
