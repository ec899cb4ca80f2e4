package session

import (
	"context"
	"errors"
	"sync"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/form"
	"repair_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Screen identifies what a session is looking at.
type Screen string

const (
	ScreenHome            Screen = "inicio"
	ScreenLogin           Screen = "login"
	ScreenOrders          Screen = "ordenes"
	ScreenStatusLookup    Screen = "estado"
	ScreenAppointmentForm Screen = "cita"
	ScreenAppointmentList Screen = "citas"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrUnknownScreen = errors.New("unknown screen")
)

// staff reports whether s belongs to the logged-in view.
func (s Screen) staff() bool {
	return s == ScreenOrders || s == ScreenAppointmentList
}

func (s Screen) Valid() bool {
	switch s {
	case ScreenHome, ScreenLogin, ScreenOrders, ScreenStatusLookup, ScreenAppointmentForm, ScreenAppointmentList:
		return true
	}
	return false
}

// LookupState is the outcome of the last status lookup.
type LookupState struct {
	OrderNumber string          `json:"orderNumber,omitempty"`
	Order       *entities.Order `json:"order,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// State is a consistent copy of everything a session renders.
type State struct {
	ID                string                    `json:"id"`
	Screen            Screen                    `json:"screen"`
	Username          string                    `json:"username,omitempty"`
	LoginError        string                    `json:"loginError,omitempty"`
	Orders            usecase.OrderView         `json:"orders"`
	OrderForm         form.OrderFormState       `json:"orderForm"`
	OrdersError       string                    `json:"ordersError,omitempty"`
	Appointments      usecase.AppointmentView   `json:"appointments"`
	AppointmentForm   form.AppointmentFormState `json:"appointmentForm"`
	AppointmentsError string                    `json:"appointmentsError,omitempty"`
	Lookup            LookupState               `json:"lookup"`
}

// Workspace is the application state of one browser session. It replaces
// the process-wide login flag and record arrays with explicit, per-session
// state; the sync use cases are the only writers of the record caches.
type Workspace struct {
	id           string
	auth         interfaces.IAuthenticator
	orders       usecase.IOrderSyncUseCase
	appointments usecase.IAppointmentSyncUseCase
	lookup       usecase.IStatusLookupUseCase
	logger       *zap.Logger

	mu         sync.Mutex
	screen     Screen
	identity   *interfaces.Identity
	loginError string
	lookupRes  LookupState
}

func NewWorkspace(
	id string,
	auth interfaces.IAuthenticator,
	orders usecase.IOrderSyncUseCase,
	appointments usecase.IAppointmentSyncUseCase,
	lookup usecase.IStatusLookupUseCase,
	logger *zap.Logger,
) *Workspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workspace{
		id:           id,
		auth:         auth,
		orders:       orders,
		appointments: appointments,
		lookup:       lookup,
		logger:       logger.With(zap.String("session_id", id)),
		screen:       ScreenHome,
	}
}

func (w *Workspace) ID() string { return w.id }

func (w *Workspace) Orders() usecase.IOrderSyncUseCase { return w.orders }

func (w *Workspace) Appointments() usecase.IAppointmentSyncUseCase { return w.appointments }

func (w *Workspace) Screen() Screen {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.screen
}

func (w *Workspace) LoggedIn() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.identity != nil
}

// ShowLogin opens the login screen. A logged-in session goes to the
// dashboard instead.
func (w *Workspace) ShowLogin(ctx context.Context) error {
	if w.LoggedIn() {
		return w.Navigate(ctx, ScreenOrders)
	}
	w.mu.Lock()
	w.screen = ScreenLogin
	w.loginError = ""
	w.mu.Unlock()
	return nil
}

// Login checks the credentials and, on success, enters the dashboard and
// refreshes the order cache. A failed refresh does not undo the login; it is
// reported through the orders error.
func (w *Workspace) Login(ctx context.Context, username, password string) error {
	id, err := w.auth.Authenticate(ctx, username, password)
	if err != nil {
		w.logger.Info("[session][login] rejected", zap.String("username", username))
		w.mu.Lock()
		w.screen = ScreenLogin
		w.loginError = usecase.UserMessage(usecase.OpLogin, err)
		w.mu.Unlock()
		return err
	}

	w.mu.Lock()
	w.identity = &id
	w.loginError = ""
	w.screen = ScreenOrders
	w.mu.Unlock()
	w.logger.Info("[session][login] accepted", zap.String("username", id.Username))

	_ = w.orders.Refresh(ctx)
	return nil
}

// Logout forgets the identity and discards every cached record.
func (w *Workspace) Logout() {
	w.mu.Lock()
	w.identity = nil
	w.screen = ScreenHome
	w.lookupRes = LookupState{}
	w.mu.Unlock()

	w.orders.Clear()
	w.appointments.Clear()
	w.logger.Info("[session][logout] done")
}

// Navigate switches screens. Entering the staff view refreshes the orders
// once, opening the appointment list refreshes the appointments, and leaving
// the staff view discards the caches.
func (w *Workspace) Navigate(ctx context.Context, to Screen) error {
	if !to.Valid() {
		return ErrUnknownScreen
	}

	w.mu.Lock()
	if to.staff() && w.identity == nil {
		w.mu.Unlock()
		return ErrLoginRequired
	}
	from := w.screen
	if to == ScreenLogin && w.identity != nil {
		to = ScreenOrders
	}
	w.screen = to
	if to == ScreenStatusLookup && from != ScreenStatusLookup {
		w.lookupRes = LookupState{}
	}
	w.mu.Unlock()

	if from == to {
		return nil
	}
	if from.staff() && !to.staff() {
		w.orders.Clear()
		w.appointments.Clear()
	}
	switch to {
	case ScreenOrders:
		// Moving between staff screens keeps the order cache loaded at entry.
		if !from.staff() {
			_ = w.orders.Refresh(ctx)
		}
	case ScreenAppointmentList:
		_ = w.appointments.Refresh(ctx)
	case ScreenAppointmentForm:
		w.appointments.Form().Reset()
	}
	return nil
}

// LookupStatus runs a public status lookup and keeps its outcome for rendering.
func (w *Workspace) LookupStatus(ctx context.Context, orderNumber string) LookupState {
	res := LookupState{OrderNumber: orderNumber}
	o, err := w.lookup.Lookup(ctx, orderNumber)
	if err != nil {
		res.Error = usecase.UserMessage(usecase.OpStatusLookup, err)
	} else {
		res.Order = &o
	}

	w.mu.Lock()
	w.screen = ScreenStatusLookup
	w.lookupRes = res
	w.mu.Unlock()
	return res
}

func (w *Workspace) State() State {
	w.mu.Lock()
	st := State{
		ID:         w.id,
		Screen:     w.screen,
		LoginError: w.loginError,
		Lookup:     w.lookupRes,
	}
	if w.identity != nil {
		st.Username = w.identity.Username
	}
	w.mu.Unlock()

	st.Orders = w.orders.View()
	st.OrderForm = w.orders.Form().State()
	st.OrdersError = w.orders.LastError()
	st.Appointments = w.appointments.View()
	st.AppointmentForm = w.appointments.Form().State()
	st.AppointmentsError = w.appointments.LastError()
	return st
}
