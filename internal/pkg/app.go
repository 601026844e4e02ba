package pkg

import (
	"fmt"

	"gestaocon/internal/app/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config *config.Config
	Router *gin.Engine
}

func NewApp(c *config.Config, r *gin.Engine) *Application {
	return &Application{
		Config: c,
		Router: r,
	}
}

func (a *Application) RunApp() {
	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("servidor ouvindo em %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("servidor encerrado")
}
