package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/florianfabre/countrynews/internal/entities"
	"github.com/florianfabre/countrynews/internal/tasks"
)

// CountryStore defines database operations for the country catalog.
type CountryStore interface {
	GetAllCountries() ([]entities.Country, error)
	GetAllCountriesReverse() ([]entities.Country, error)
	GetCountriesByName(name string) ([]entities.Country, error)
	GetCountryByISO2(iso2 string) (*entities.Country, error)
}

type CountriesController struct {
	store      CountryStore
	taskClient *tasks.Client
}

func NewCountriesController(store CountryStore, taskClient *tasks.Client) *CountriesController {
	return &CountriesController{
		store:      store,
		taskClient: taskClient,
	}
}

// ListCountries returns the country catalog.
// GET /api/countries?name=<prefix>&reverse=true
func (cc *CountriesController) ListCountries(c *gin.Context) {
	var (
		countries []entities.Country
		err       error
	)

	switch {
	case c.Query("name") != "":
		countries, err = cc.store.GetCountriesByName(c.Query("name"))
	case c.Query("reverse") == "true":
		countries, err = cc.store.GetAllCountriesReverse()
	default:
		countries, err = cc.store.GetAllCountries()
	}
	if err != nil {
		respondInternalError(c, err, "list countries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"countries": countries,
		"total":     len(countries),
	})
}

// GetCountry returns a single country by its ISO alpha-2 code.
// GET /api/countries/:iso2
func (cc *CountriesController) GetCountry(c *gin.Context) {
	country, err := cc.store.GetCountryByISO2(c.Param("iso2"))
	if err != nil {
		respondNotFound(c, "country")
		return
	}

	c.JSON(http.StatusOK, country)
}

// RefreshCountries enqueues a background refresh of the catalog.
// POST /api/countries/refresh
func (cc *CountriesController) RefreshCountries(c *gin.Context) {
	if cc.taskClient == nil {
		respondBadRequest(c, "background tasks are disabled")
		return
	}

	ids, err := cc.taskClient.Add(tasks.RefreshCountriesTask{}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue country refresh")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "country refresh enqueued",
		"task_id": ids[0],
	})
}
