package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

// VoteRepository implements port.VoteRepository using pgxpool for
// PostgreSQL. Multi-record operations run in serializable transactions
// with row locks on the campaign, so counters never lose updates and the
// vote-once rule holds under concurrency.
type VoteRepository struct {
	pool *pgxpool.Pool
}

// NewVoteRepository returns a new repository instance.
func NewVoteRepository(pool *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{pool: pool}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateCampaign inserts a campaign row at its derived address.
func (r *VoteRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	tv, err := json.Marshal(c.TopVoters)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
	(address, title, creator, start_time, end_time, banner_url, fee_percentage, is_active, total_votes, contestant_count, top_voters)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.Address, c.Title, c.Creator, c.StartTime, c.EndTime, c.BannerURL, c.FeePercentage, c.IsActive, c.TotalVotes, c.ContestantCount, tv)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateCampaign
	}
	return err
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		raw []byte
	)
	err := row.Scan(&c.Address, &c.Title, &c.Creator, &c.StartTime, &c.EndTime, &c.BannerURL,
		&c.FeePercentage, &c.IsActive, &c.TotalVotes, &c.ContestantCount, &raw)
	if err != nil {
		return c, err
	}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &c.TopVoters); err != nil {
			return c, err
		}
	}
	return c, nil
}

const campaignColumns = `address, title, creator, start_time, end_time, banner_url, fee_percentage, is_active, total_votes, contestant_count, top_voters`

// GetCampaign returns the campaign at addr.
func (r *VoteRepository) GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE address = $1`, addr))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns all campaigns ordered by title.
func (r *VoteRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY title`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// UpdateCampaign overwrites the creator-editable fields. The vote counters
// and contestant count are only touched by CastVote and AddContestant so
// concurrent increments are never clobbered.
func (r *VoteRepository) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
	SET end_time = $2, banner_url = $3, fee_percentage = $4, is_active = $5
	WHERE address = $1`,
		c.Address, c.EndTime, c.BannerURL, c.FeePercentage, c.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// AddContestant locks the campaign row, assigns the next ordinal and bumps
// the contestant count in one transaction.
func (r *VoteRepository) AddContestant(ctx context.Context, campaign domain.Address, ct *domain.Contestant) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer finishTx(ctx, tx, &err)

	var count int
	err = tx.QueryRow(ctx, `SELECT contestant_count FROM campaigns WHERE address = $1 FOR UPDATE`, campaign).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}
	if count >= domain.MaxContestants {
		err = domain.ErrTooManyContestants
		return err
	}

	ct.Campaign = campaign
	ct.ContestantID = count
	ct.Address = domain.ContestantAddress(campaign, count)
	ct.VoteCount = 0
	_, err = tx.Exec(ctx, `INSERT INTO contestants (address, campaign, contestant_id, name, image_url, bio, vote_count)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		ct.Address, ct.Campaign, ct.ContestantID, ct.Name, ct.ImageURL, ct.Bio, ct.VoteCount)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET contestant_count = contestant_count + 1 WHERE address = $1`, campaign)
	return err
}

const contestantColumns = `address, campaign, contestant_id, name, image_url, bio, vote_count`

func scanContestant(row pgx.Row) (domain.Contestant, error) {
	var ct domain.Contestant
	err := row.Scan(&ct.Address, &ct.Campaign, &ct.ContestantID, &ct.Name, &ct.ImageURL, &ct.Bio, &ct.VoteCount)
	return ct, err
}

// GetContestant returns the contestant at addr.
func (r *VoteRepository) GetContestant(ctx context.Context, addr domain.Address) (*domain.Contestant, error) {
	ct, err := scanContestant(r.pool.QueryRow(ctx, `SELECT `+contestantColumns+` FROM contestants WHERE address = $1`, addr))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrContestantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// ListContestants returns a campaign's roster ordered by ordinal.
func (r *VoteRepository) ListContestants(ctx context.Context, campaign domain.Address) ([]domain.Contestant, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contestantColumns+` FROM contestants WHERE campaign = $1 ORDER BY contestant_id`, campaign)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contestant, error) {
		return scanContestant(row)
	})
}

// UpdateContestant overwrites the display fields of a contestant.
func (r *VoteRepository) UpdateContestant(ctx context.Context, ct domain.Contestant) error {
	tag, err := r.pool.Exec(ctx, `UPDATE contestants SET name = $2, image_url = $3, bio = $4 WHERE address = $1`,
		ct.Address, ct.Name, ct.ImageURL, ct.Bio)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContestantNotFound
	}
	return nil
}

// GetVoterRecord returns the vote marker at addr.
func (r *VoteRepository) GetVoterRecord(ctx context.Context, addr domain.Address) (*domain.VoterRecord, error) {
	var rec domain.VoterRecord
	err := r.pool.QueryRow(ctx, `SELECT address, campaign, voter, has_voted, total_voted FROM voter_records WHERE address = $1`, addr).
		Scan(&rec.Address, &rec.Campaign, &rec.Voter, &rec.HasVoted, &rec.TotalVoted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVoterRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CastVote applies the whole vote in one serializable transaction: lock
// the campaign row, enforce vote-once, move the balance split, bump the
// counters and write the voter record. Any failure, including a failure
// at commit, rolls everything back and is returned to the caller.
func (r *VoteRepository) CastVote(ctx context.Context, v port.CastVote) (rec *domain.VoterRecord, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		// a serialization failure can surface at COMMIT; never report a
		// record the database rolled back
		finishTx(ctx, tx, &err)
		if err != nil {
			rec = nil
		}
	}()

	// lock campaign; campaign row is always locked before the voter record
	// so concurrent votes take locks in the same order
	var (
		totalVotes int64
		rawVoters  []byte
	)
	err = tx.QueryRow(ctx, `SELECT total_votes, top_voters FROM campaigns WHERE address = $1 FOR UPDATE`, v.Campaign).
		Scan(&totalVotes, &rawVoters)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrCampaignNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var hasVoted bool
	var prevTotal int64
	err = tx.QueryRow(ctx, `SELECT has_voted, total_voted FROM voter_records WHERE address = $1 FOR UPDATE`, v.VoterRecord).
		Scan(&hasVoted, &prevTotal)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil && hasVoted {
		err = domain.ErrAlreadyVoted
		return nil, err
	}
	err = nil

	if err = debit(ctx, tx, v.VoterWallet, v.Amount); err != nil {
		return nil, err
	}
	if err = credit(ctx, tx, v.Vault, v.Net); err != nil {
		return nil, err
	}
	if err = credit(ctx, tx, v.Treasury, v.Fee); err != nil {
		return nil, err
	}

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `UPDATE contestants SET vote_count = vote_count + $2 WHERE address = $1`, v.Contestant, v.Amount)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrContestantNotFound
		return nil, err
	}

	record := domain.VoterRecord{
		Address:    v.VoterRecord,
		Campaign:   v.Campaign,
		Voter:      v.Voter,
		HasVoted:   true,
		TotalVoted: prevTotal + v.Amount,
	}
	_, err = tx.Exec(ctx, `INSERT INTO voter_records (address, campaign, voter, has_voted, total_voted)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (address) DO UPDATE SET has_voted = true, total_voted = voter_records.total_voted + $6`,
		record.Address, record.Campaign, record.Voter, record.HasVoted, record.TotalVoted, v.Amount)
	if err != nil {
		return nil, err
	}

	// fold the new running total into the leaderboard in Go; the campaign
	// row is locked so read-modify-write is safe
	board := domain.Campaign{TotalVotes: totalVotes}
	if len(rawVoters) > 0 {
		if err = json.Unmarshal(rawVoters, &board.TopVoters); err != nil {
			return nil, err
		}
	}
	board.RecordTopVoter(v.Voter, record.TotalVoted)
	var tv []byte
	tv, err = json.Marshal(board.TopVoters)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET total_votes = total_votes + $2, top_voters = $3 WHERE address = $1`,
		v.Campaign, v.Amount, tv)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// finishTx closes a transaction from a deferred call: it rolls back when
// the operation already failed, otherwise it commits and records a commit
// failure into *errp so the caller never reports discarded work as done.
func finishTx(ctx context.Context, tx pgx.Tx, errp *error) {
	if *errp != nil {
		_ = tx.Rollback(ctx)
		return
	}
	*errp = tx.Commit(ctx)
}

// debit subtracts amount from an account, failing when the balance is
// short. The conditional update doubles as the existence check: a missing
// account simply has nothing to spend.
func debit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount int64) error {
	tag, err := tx.Exec(ctx, `UPDATE token_accounts SET balance = balance - $2 WHERE address = $1 AND balance >= $2`, addr, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// credit adds amount to an account, creating it on first use. Zero-amount
// credits are skipped so a 0% fee never materialises a treasury row.
func credit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount int64) error {
	if amount == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `INSERT INTO token_accounts (address, balance) VALUES ($1, $2)
ON CONFLICT (address) DO UPDATE SET balance = token_accounts.balance + EXCLUDED.balance`, addr, amount)
	return err
}
