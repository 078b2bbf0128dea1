package usecasees

import (
	"database/sql"
	"testing"

	ctrlMocks "pairtrader/internal/controllers/mocks"
	"pairtrader/internal/repository/mongo"
	mongoMocks "pairtrader/internal/repository/mongo/mocks"
	mongoStructs "pairtrader/internal/repository/mongo/structs"
	pgMocks "pairtrader/internal/repository/postgres/mocks"
	signalStructs "pairtrader/internal/usecasees/structs"
	"pairtrader/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockGenSignal struct {
	cryptoCtrl   *ctrlMocks.CryptoCtrl
	tgmCtrl      *ctrlMocks.TgmCtrl
	signalRepo   *pgMocks.SignalRepo
	tickerRepo   *pgMocks.TickerRepo
	settingsRepo *mongoMocks.SettingsRepo

	logger *logrus.Logger
}

func newMockGenSignal() *mockGenSignal {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return &mockGenSignal{
		cryptoCtrl:   &ctrlMocks.CryptoCtrl{},
		tgmCtrl:      &ctrlMocks.TgmCtrl{},
		signalRepo:   &pgMocks.SignalRepo{},
		tickerRepo:   &pgMocks.TickerRepo{},
		settingsRepo: &mongoMocks.SettingsRepo{},
		logger:       logger,
	}
}

func (mockGen *mockGenSignal) passphraseMocks(valid bool) {
	mockGen.cryptoCtrl.On("PassphraseValid", mock.AnythingOfType("string")).Return(valid)
}

func (mockGen *mockGenSignal) settingsMocks(status mongoStructs.WebhookStatus) {
	mockGen.settingsRepo.On("Load", mongo.ProfileWebhook).
		Return(&mongoStructs.Settings{
			Name:   mongo.ProfileWebhook,
			Status: status.ToString(),
			Notify: true,
		}, nil)
}

func (mockGen *mockGenSignal) emptyRegistryMocks() {
	mockGen.tickerRepo.On("GetBySymbol", mock.AnythingOfType("string")).
		Return(nil, sql.ErrNoRows)
}

func (mockGen *mockGenSignal) tgmMocks() {
	mockGen.tgmCtrl.On("Send", mock.AnythingOfType("string")).Return(nil)
}

func (mockGen *mockGenSignal) initSignalUseCase() *SignalUseCase {
	metrics := make(map[signalStructs.MetricConst]prometheus.Counter)
	for _, m := range []signalStructs.MetricConst{
		signalStructs.MetricSignalReceived,
		signalStructs.MetricSignalParseFailed,
		signalStructs.MetricOrderUpdateApplied,
		signalStructs.MetricOrderFilled,
		signalStructs.MetricOrderCanceled,
	} {
		metrics[m] = prometheus.NewCounter(prometheus.CounterOpts{Name: string(m)})
	}

	return NewSignalUseCase(
		mockGen.cryptoCtrl,
		mockGen.tgmCtrl,
		mockGen.signalRepo,
		mockGen.tickerRepo,
		mockGen.settingsRepo,
		metrics,
		mockGen.logger,
	)
}

func Test_CreateFromWebhook(t *testing.T) {
	t.Run("wrong passphrase", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(false)

		_, err := mockGen.initSignalUseCase().CreateFromWebhook(&signalStructs.WebhookRequest{
			Passphrase: "nope",
			Ticker:     "NYSE:IBM",
		})

		assert.ErrorIs(t, err, ErrPassphraseWrong)
		mockGen.signalRepo.AssertNotCalled(t, "Store", mock.Anything)
	})

	t.Run("webhook disabled", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)
		mockGen.settingsMocks(mongoStructs.Disabled)

		_, err := mockGen.initSignalUseCase().CreateFromWebhook(&signalStructs.WebhookRequest{
			Passphrase: "pass",
			Ticker:     "NYSE:IBM",
		})

		assert.ErrorIs(t, err, ErrWebhookDisabled)
		mockGen.signalRepo.AssertNotCalled(t, "Store", mock.Anything)
	})

	t.Run("pair signal parsed and stored", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)
		mockGen.settingsMocks(mongoStructs.Enabled)
		mockGen.emptyRegistryMocks()

		mockGen.signalRepo.On("Store", mock.AnythingOfType("*models.Signal")).Return(7, nil)

		signal, err := mockGen.initSignalUseCase().CreateFromWebhook(&signalStructs.WebhookRequest{
			Passphrase:     "pass",
			Ticker:         "NYSE:KO-0.7*NYSE:PEP",
			OrderAction:    models.SideBuy,
			OrderContracts: 100,
			OrderPrice:     12.5,
		})

		assert.NoError(t, err)
		assert.Equal(t, 7, signal.RowID)
		assert.Equal(t, models.KindPair, signal.TickerType)
		assert.Equal(t, "KO", signal.Ticker1)
		assert.Equal(t, "PEP", signal.Ticker2)
		assert.Equal(t, 0.7, signal.Hedge)
		assert.Equal(t, models.StatusWaiting, signal.OrderStatus)
	})

	t.Run("problematic ticker is stored flagged", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)
		mockGen.settingsMocks(mongoStructs.Enabled)
		mockGen.emptyRegistryMocks()
		mockGen.tgmMocks()

		mockGen.signalRepo.On("Store", mock.AnythingOfType("*models.Signal")).Return(8, nil)

		signal, err := mockGen.initSignalUseCase().CreateFromWebhook(&signalStructs.WebhookRequest{
			Passphrase: "pass",
			Ticker:     "NYSE:A-NYSE:B-NYSE:C",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusError, signal.OrderStatus)
		assert.Equal(t, ReasonProblematic, signal.StatusMsg)
		mockGen.signalRepo.AssertCalled(t, "Store", mock.AnythingOfType("*models.Signal"))
		mockGen.tgmCtrl.AssertCalled(t, "Send", mock.AnythingOfType("string"))
	})

	t.Run("notifications off suppresses telegram", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)
		mockGen.emptyRegistryMocks()

		mockGen.settingsRepo.On("Load", mongo.ProfileWebhook).
			Return(&mongoStructs.Settings{
				Name:   mongo.ProfileWebhook,
				Status: mongoStructs.Enabled.ToString(),
				Notify: false,
			}, nil)

		mockGen.signalRepo.On("Store", mock.AnythingOfType("*models.Signal")).Return(10, nil)

		signal, err := mockGen.initSignalUseCase().CreateFromWebhook(&signalStructs.WebhookRequest{
			Passphrase: "pass",
			Ticker:     "NYSE:A-NYSE:B-NYSE:C",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusError, signal.OrderStatus)
		mockGen.tgmCtrl.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("explicit overrides win over the parser", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)
		mockGen.settingsMocks(mongoStructs.Enabled)
		mockGen.emptyRegistryMocks()

		mockGen.signalRepo.On("Store", mock.AnythingOfType("*models.Signal")).Return(9, nil)

		signal, err := mockGen.initSignalUseCase().CreateFromWebhook(&signalStructs.WebhookRequest{
			Passphrase: "pass",
			Ticker:     "NYSE:KO-NYSE:PEP",
			Ticker1:    "KO OVERRIDE",
			Hedge:      2.5,
			OrderID1:   "ord-1",
			OrderID2:   "ord-2",
		})

		assert.NoError(t, err)
		assert.Equal(t, "KO OVERRIDE", signal.Ticker1)
		assert.Equal(t, "PEP", signal.Ticker2)
		assert.Equal(t, 2.5, signal.Hedge)
		assert.Equal(t, "ord-1", signal.OrderID1)
	})
}

func Test_ApplyOrderUpdate(t *testing.T) {
	pairSignal := func() *models.Signal {
		return &models.Signal{
			RowID:          11,
			Ticker:         "NYSE:KO-3*NYSE:PEP",
			OrderAction:    models.SideBuy,
			OrderContracts: 100,
			OrderPrice:     10,
			OrderStatus:    models.StatusWaiting,
			TickerType:     models.KindPair,
			Ticker1:        "KO",
			Ticker2:        "PEP",
			Hedge:          3,
			OrderID1:       "ord-1",
			OrderID2:       "ord-2",
		}
	}

	t.Run("unknown order", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		mockGen.signalRepo.On("GetByOrder", "ord-x", "KO").Return(nil, sql.ErrNoRows)

		_, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-x",
			Symbol:     "KO",
		})

		assert.ErrorIs(t, err, ErrSignalNotFound)
		mockGen.signalRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("partial without contracts", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		_, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Partial:    true,
		})

		assert.ErrorIs(t, err, ErrMissingContracts)
		mockGen.signalRepo.AssertNotCalled(t, "GetByOrder", mock.Anything, mock.Anything)
	})

	t.Run("cancel", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)
		mockGen.settingsMocks(mongoStructs.Enabled)
		mockGen.tgmMocks()

		mockGen.signalRepo.On("GetByOrder", "ord-1", "KO").Return(pairSignal(), nil)
		mockGen.signalRepo.On("Update", mock.AnythingOfType("*models.Signal")).Return(nil)

		signal, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Cancel:     true,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusCanceled, signal.OrderStatus)
		assert.Equal(t, MsgMultipleActive, signal.StatusMsg)
	})

	t.Run("partial adjust shrinks the order", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		mockGen.signalRepo.On("GetByOrder", "ord-1", "KO").Return(pairSignal(), nil)
		mockGen.signalRepo.On("Update", mock.AnythingOfType("*models.Signal")).Return(nil)

		signal, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Partial:    true,
			Contracts:  60,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusPartFilled, signal.OrderStatus)
		assert.Equal(t, 60, signal.OrderContracts)
		assert.Equal(t, "40 contracts canceled", signal.StatusMsg)
	})

	t.Run("second leg fills in stages", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		stored := pairSignal()
		stored.FillPrice1 = 55

		mockGen.signalRepo.On("GetByOrder", "ord-2", "PEP").Return(stored, nil)
		mockGen.signalRepo.On("Update", mock.AnythingOfType("*models.Signal")).Return(nil)

		useCase := mockGen.initSignalUseCase()

		// hedge 3 on 100 contracts means the second leg owes 300
		signal, err := useCase.ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-2",
			Symbol:     "PEP",
			Price:      15.0001,
			Filled:     270,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusPartFilled, signal.OrderStatus)
		assert.Equal(t, "PEP: 30 remaining", signal.StatusMsg)

		signal, err = useCase.ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-2",
			Symbol:     "PEP",
			Price:      15.0001,
			Filled:     300,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusFilled, signal.OrderStatus)
		assert.Equal(t, "", signal.StatusMsg)
		// 55 - 3*15.0001 rounded to 4 places
		assert.Equal(t, 9.9997, signal.FillPrice)
		assert.Equal(t, 0.0003, signal.Slip)
	})

	t.Run("one leg done waits for the other", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		mockGen.signalRepo.On("GetByOrder", "ord-1", "KO").Return(pairSignal(), nil)
		mockGen.signalRepo.On("Update", mock.AnythingOfType("*models.Signal")).Return(nil)

		signal, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Price:      55,
			Filled:     100,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusFilledWait, signal.OrderStatus)
		assert.Equal(t, float64(0), signal.FillPrice)
	})

	t.Run("lagging leg completes a waiting spread", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		stored := pairSignal()
		stored.OrderStatus = models.StatusFilledWait
		stored.FillPrice2 = 15.0001

		mockGen.signalRepo.On("GetByOrder", "ord-1", "KO").Return(stored, nil)
		mockGen.signalRepo.On("Update", mock.AnythingOfType("*models.Signal")).Return(nil)

		signal, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Price:      55,
			Filled:     100,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusFilled, signal.OrderStatus)
		assert.Equal(t, 9.9997, signal.FillPrice)
		assert.Equal(t, 0.0003, signal.Slip)
	})

	t.Run("sell slip is negated", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		stored := &models.Signal{
			RowID:          12,
			Ticker:         "NYSE:IBM",
			OrderAction:    models.SideSell,
			OrderContracts: 10,
			OrderPrice:     100,
			OrderStatus:    models.StatusWaiting,
			TickerType:     models.KindSingle,
			Ticker1:        "IBM",
			OrderID1:       "ord-9",
		}

		mockGen.signalRepo.On("GetByOrder", "ord-9", "IBM").Return(stored, nil)
		mockGen.signalRepo.On("Update", mock.AnythingOfType("*models.Signal")).Return(nil)

		signal, err := mockGen.initSignalUseCase().ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-9",
			Symbol:     "IBM",
			Price:      99,
			Filled:     10,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusFilled, signal.OrderStatus)
		assert.Equal(t, float64(99), signal.FillPrice)
		assert.Equal(t, float64(-1), signal.Slip)
	})

	t.Run("filled is terminal", func(t *testing.T) {
		mockGen := newMockGenSignal()
		mockGen.passphraseMocks(true)

		stored := pairSignal()
		stored.OrderStatus = models.StatusFilled
		stored.FillPrice = 9.9997

		mockGen.signalRepo.On("GetByOrder", "ord-1", "KO").Return(stored, nil)

		useCase := mockGen.initSignalUseCase()

		signal, err := useCase.ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Price:      54,
			Filled:     100,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusFilled, signal.OrderStatus)
		assert.Equal(t, 9.9997, signal.FillPrice)

		signal, err = useCase.ApplyOrderUpdate(&signalStructs.OrderUpdateRequest{
			Passphrase: "pass",
			OrderID:    "ord-1",
			Symbol:     "KO",
			Cancel:     true,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusFilled, signal.OrderStatus)
		mockGen.signalRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}
