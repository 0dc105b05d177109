package service

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrClientNotFound = errors.New("client not found")
)

// ClientInput is a draft client as submitted by the intake/edit form.
// Height and CurrentWeight arrive as text and are coerced to numbers during
// validation.
type ClientInput struct {
	ID            string // optional; supplied by retrying clients for idempotency
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Gender        domain.Gender
	DateOfBirth   *time.Time
	Height        string
	CurrentWeight string
	Notes         string
}

// GoalInput is a draft goal for an existing client.
type GoalInput struct {
	ID          string
	Type        domain.GoalType
	Description string
	TargetDate  *time.Time
	StartValue  string
	TargetValue string
	Unit        string
}

// ProgressEntryInput is a draft measurement snapshot.
type ProgressEntryInput struct {
	ID           string
	Date         *time.Time
	Weight       *float64
	BodyFat      *float64
	Notes        string
	Measurements *domain.Measurements
}

// ChartPoint is one plotted value of a progress series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a UI-ready progress series for one metric. HasData is an
// explicit empty-state flag so callers render "no data" instead of an empty
// chart.
type ChartSeries struct {
	Metric  domain.Metric `json:"metric"`
	Unit    string        `json:"unit"`
	Points  []ChartPoint  `json:"points"`
	HasData bool          `json:"hasData"`
}

// ClientService owns client records and everything embedded in them: goals,
// progress entries and assigned plans.
type ClientService interface {
	ListClients(ctx context.Context, search string, goalType *domain.GoalType) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, input ClientInput) (*domain.Client, error)
	AddGoal(ctx context.Context, clientID string, input GoalInput) (*domain.Goal, error)
	AddProgressEntry(ctx context.Context, clientID string, input ProgressEntryInput) (*domain.ProgressEntry, error)
	SetDietPlan(ctx context.Context, clientID string, input DietPlanInput) (*domain.DietPlan, error)
	SetWorkoutPlan(ctx context.Context, clientID string, input WorkoutPlanInput) (*domain.WorkoutPlan, error)
	ChartSeries(ctx context.Context, clientID string, metric domain.Metric) (*ChartSeries, error)
	SetPhotoObjectKey(ctx context.Context, clientID, objectKey string) error
}

// clientService implements the ClientService interface.
type clientService struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

// ListClients returns clients matching the search text and goal-type filter.
// Empty search and nil goal type return the full list unchanged, in store
// order. Search is a case-insensitive substring match against "first last"
// or email; the goal-type filter requires at least one goal of that type.
func (s *clientService) ListClients(ctx context.Context, search string, goalType *domain.GoalType) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterClients(clients, search, goalType), nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// CreateClient validates the draft and inserts a full client record. The id
// is generated before the insert; a retry carrying the same id returns the
// already-created record instead of inserting a duplicate.
func (s *clientService) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	fields, height, weight := validateClientInput(input)
	if len(fields) > 0 {
		return nil, fields
	}

	gender := input.Gender
	if gender == "" {
		gender = domain.GenderOther
	}

	client := &domain.Client{
		ID:              orNewID(input.ID),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		DateOfBirth:     input.DateOfBirth,
		JoinDate:        s.now().UTC(),
		Gender:          gender,
		Height:          height,
		CurrentWeight:   weight,
		InitialWeight:   weight,
		Goals:           []domain.Goal{},
		ProgressEntries: []domain.ProgressEntry{},
		Notes:           input.Notes,
	}

	if _, err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return s.clientRepo.GetByID(ctx, client.ID)
		}
		return nil, err
	}
	return s.clientRepo.GetByID(ctx, client.ID)
}

// UpdateClient replaces the editable fields of an existing record. Goals,
// progress entries and plans are untouched; they have their own operations.
func (s *clientService) UpdateClient(ctx context.Context, id string, input ClientInput) (*domain.Client, error) {
	fields, height, weight := validateClientInput(input)
	if len(fields) > 0 {
		return nil, fields
	}

	existing, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Height = height
	existing.CurrentWeight = weight
	existing.Notes = input.Notes
	if input.Gender != "" {
		existing.Gender = input.Gender
	}
	if input.DateOfBirth != nil {
		existing.DateOfBirth = input.DateOfBirth
	}

	if err := s.clientRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return existing, nil
}

// AddGoal validates and appends a new goal to the client. New goals start
// Not Started with zero progress; the current value mirrors the start value.
func (s *clientService) AddGoal(ctx context.Context, clientID string, input GoalInput) (*domain.Goal, error) {
	var fields domain.ValidationErrors

	if !input.Type.IsValid() {
		fields = fields.Add("type", "Invalid goal type")
	}
	if input.Description == "" {
		fields = fields.Add("description", "Description is required")
	}
	if input.TargetDate == nil {
		fields = fields.Add("targetDate", "Target date is required")
	} else if input.TargetDate.Before(startOfDay(s.now())) {
		fields = fields.Add("targetDate", "Target date cannot be in the past")
	}
	startValue, fields := coerceOptionalNumber(input.StartValue, "startValue", fields)
	targetValue, fields := coerceOptionalNumber(input.TargetValue, "targetValue", fields)
	if len(fields) > 0 {
		return nil, fields
	}

	unit := input.Unit
	if unit == "" {
		unit = domain.SuggestUnit(input.Type)
	}

	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	goal := domain.Goal{
		ID:           orNewID(input.ID),
		ClientID:     client.ID,
		Type:         input.Type,
		Description:  input.Description,
		TargetDate:   *input.TargetDate,
		Status:       domain.GoalNotStarted,
		Progress:     0,
		StartValue:   startValue,
		CurrentValue: startValue,
		TargetValue:  targetValue,
		Unit:         unit,
	}
	for _, g := range client.Goals {
		if g.ID == goal.ID {
			return &g, nil
		}
	}

	client.Goals = append(client.Goals, goal)
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return &goal, nil
}

// AddProgressEntry appends a measurement snapshot. Entries are append-only.
func (s *clientService) AddProgressEntry(ctx context.Context, clientID string, input ProgressEntryInput) (*domain.ProgressEntry, error) {
	var fields domain.ValidationErrors
	if input.Date == nil {
		fields = fields.Add("date", "A date is required")
	}
	if len(fields) > 0 {
		return nil, fields
	}

	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entry := domain.ProgressEntry{
		ID:           orNewID(input.ID),
		ClientID:     client.ID,
		Date:         *input.Date,
		Weight:       input.Weight,
		BodyFat:      input.BodyFat,
		Notes:        input.Notes,
		Measurements: input.Measurements,
	}
	for _, p := range client.ProgressEntries {
		if p.ID == entry.ID {
			return &p, nil
		}
	}

	client.ProgressEntries = append(client.ProgressEntries, entry)
	if entry.Weight != nil {
		client.CurrentWeight = entry.Weight
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetDietPlan validates and assigns (or replaces) the client's diet plan.
func (s *clientService) SetDietPlan(ctx context.Context, clientID string, input DietPlanInput) (*domain.DietPlan, error) {
	if fields := validateDietPlanInput(input); len(fields) > 0 {
		return nil, fields
	}

	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		if client.DietPlan != nil {
			id = client.DietPlan.ID
		} else {
			id = uuid.NewString()
		}
	}
	plan := buildDietPlan(id, input)
	client.DietPlan = &plan
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SetWorkoutPlan validates and assigns (or replaces) the client's workout plan.
func (s *clientService) SetWorkoutPlan(ctx context.Context, clientID string, input WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if fields := validateWorkoutPlanInput(input); len(fields) > 0 {
		return nil, fields
	}

	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		if client.WorkoutPlan != nil {
			id = client.WorkoutPlan.ID
		} else {
			id = uuid.NewString()
		}
	}
	plan := buildWorkoutPlan(id, input)
	client.WorkoutPlan = &plan
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ChartSeries projects the client's progress entries into a plottable series
// for one metric: entries without that metric are dropped, the rest sorted
// ascending by date.
func (s *clientService) ChartSeries(ctx context.Context, clientID string, metric domain.Metric) (*ChartSeries, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	series := BuildChartSeries(client.ProgressEntries, metric)
	return &series, nil
}

// SetPhotoObjectKey records where the client's photo lives in object storage.
func (s *clientService) SetPhotoObjectKey(ctx context.Context, clientID, objectKey string) error {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return err
	}
	client.PhotoObjectKey = objectKey
	return s.clientRepo.Update(ctx, client)
}

// FilterClients applies the search/goal-type filter to a client list without
// reordering it.
func FilterClients(clients []domain.Client, search string, goalType *domain.GoalType) []domain.Client {
	if search == "" && goalType == nil {
		return clients
	}

	query := strings.ToLower(search)
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		matchesSearch := query == "" ||
			strings.Contains(strings.ToLower(c.FullName()), query) ||
			strings.Contains(strings.ToLower(c.Email), query)
		matchesGoal := goalType == nil || c.HasGoalOfType(*goalType)
		if matchesSearch && matchesGoal {
			out = append(out, c)
		}
	}
	return out
}

// BuildChartSeries maps progress entries to (label, value) points for the
// given metric. An empty result carries HasData=false so the caller shows an
// explicit no-data state.
func BuildChartSeries(entries []domain.ProgressEntry, metric domain.Metric) ChartSeries {
	unit := "kg"
	if metric == domain.MetricBodyFat {
		unit = "%"
	}

	withMetric := make([]domain.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if e.MetricValue(metric) != nil {
			withMetric = append(withMetric, e)
		}
	}
	sort.SliceStable(withMetric, func(i, j int) bool {
		return withMetric[i].Date.Before(withMetric[j].Date)
	})

	points := make([]ChartPoint, len(withMetric))
	for i, e := range withMetric {
		points[i] = ChartPoint{
			Label: e.Date.Format("Jan 02"),
			Value: *e.MetricValue(metric),
		}
	}
	return ChartSeries{
		Metric:  metric,
		Unit:    unit,
		Points:  points,
		HasData: len(points) > 0,
	}
}

func validateClientInput(input ClientInput) (domain.ValidationErrors, *float64, *float64) {
	var fields domain.ValidationErrors

	if input.FirstName == "" {
		fields = fields.Add("firstName", "First name is required")
	}
	if input.LastName == "" {
		fields = fields.Add("lastName", "Last name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		fields = fields.Add("email", "Invalid email address")
	}
	height, fields := coerceOptionalNumber(input.Height, "height", fields)
	weight, fields := coerceOptionalNumber(input.CurrentWeight, "currentWeight", fields)

	return fields, height, weight
}

// coerceOptionalNumber parses a numeric form field submitted as text. Empty
// text means "not provided".
func coerceOptionalNumber(raw, field string, fields domain.ValidationErrors) (*float64, domain.ValidationErrors) {
	if raw == "" {
		return nil, fields
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fields.Add(field, "Must be a number")
	}
	return &v, fields
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
