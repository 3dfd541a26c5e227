package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkpress/inkpress/internal/pkg/session"
	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// HandleAuthLogin renders the login form and processes submissions. The
// remember flag extends the session lifetime to seven days.
func HandleAuthLogin(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect("/")
	}

	if c.Method() == fiber.MethodPost {
		username := c.FormValue("username")
		password := c.FormValue("password")
		remember := c.FormValue("remember") != ""

		user, err := svc.Identity.VerifyCredentials(username, password)
		if err != nil {
			return flashError(c, err, "/login")
		}

		if err := session.Login(c, user, remember); err != nil {
			return flashError(c, err, "/login")
		}

		return flashSuccess(c, "Welcome back, "+user.Username+"!", "/")
	}

	return render(c, "login", fiber.Map{"Title": "Login"})
}

// HandleAuthRegister renders the registration form and creates accounts.
func HandleAuthRegister(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect("/")
	}

	if c.Method() == fiber.MethodPost {
		username := c.FormValue("username")
		email := c.FormValue("email")
		password := c.FormValue("password")
		confirm := c.FormValue("confirm_password")

		if password != confirm {
			fm := fiber.Map{"type": "danger", "message": "Passwords must match"}
			return flash.WithError(c, fm).Redirect("/register")
		}

		if _, err := svc.Identity.Register(username, email, password); err != nil {
			return flashError(c, err, "/register")
		}

		return flashSuccess(c, "Registration successful, please log in", "/login")
	}

	return render(c, "register", fiber.Map{"Title": "Register"})
}

// HandleAuthLogout destroys the session.
func HandleAuthLogout(c *fiber.Ctx) error {
	if err := session.Logout(c); err != nil {
		return flashError(c, err, "/")
	}

	return flashSuccess(c, "You have been logged out", "/")
}
