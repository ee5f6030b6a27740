package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabasePath string `env:"DATABASE_PATH" envDefault:"storefront.db"`
	FrontendURL  string `env:"FRONTEND_URL" envDefault:"http://localhost:7777"`

	Auth      Auth      `envPrefix:"AUTH_"`
	Mail      Mail      `envPrefix:"MAIL_"`
	BrainTree Braintree `envPrefix:"BRAINTREE_"`
}

type Auth struct {
	AppSecret string `env:"APP_SECRET,required"`
	// bcrypt work factor, tunable per environment
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
	// lifetime of the session cookie handed to the browser
	CookieMaxAgeDays int `env:"COOKIE_MAX_AGE_DAYS" envDefault:"365"`
}

type Mail struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@storefront.local"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
