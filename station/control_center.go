package station

import (
	"context"
	"fmt"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"github.com/signalsfoundry/orbitron-station/model"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of a password; longer input can never
// equal a valid security code.
const maxPasswordBytes = 72

// ControlCenter is the station's security module. Its lockdown flag starts
// false and can only become true, through Lockdown with the right code. There
// is no way to lift a lockdown.
type ControlCenter struct {
	baseModule

	lockedDown bool

	// securityHash is the bcrypt hash of the security code set at construction.
	securityHash []byte

	// codeLen is the byte length of the security code. bcrypt cycles its key,
	// so only equal-length inputs compare exactly.
	codeLen int
}

func newControlCenter(securityCode string, cost int, e *env) (*ControlCenter, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(securityCode), cost)
	if err != nil {
		return nil, fmt.Errorf("hash security code: %w", err)
	}
	return &ControlCenter{
		baseModule:   newBaseModule(model.ModuleControlCenter, e),
		securityHash: hash,
		codeLen:      len(securityCode),
	}, nil
}

func (c *ControlCenter) IsLockedDown() bool { return c.lockedDown }

// Lockdown locks the control center down when password exactly matches the
// security code. A correct password on an already locked-down center repeats
// the confirmation. A wrong password leaves the state untouched.
func (c *ControlCenter) Lockdown(ctx context.Context, password string) bool {
	ok := c.checkPassword(password)
	c.env.metrics.RecordLockdownAttempt(ok)
	if !ok {
		c.env.console.Println("Incorrect password. Lockdown failed.")
		c.env.log.Warn(ctx, "lockdown rejected",
			logging.String("module", c.name),
			logging.Bool("locked_down", c.lockedDown),
		)
		return false
	}

	c.lockedDown = true
	c.env.metrics.SetLockdownActive(true)
	c.env.console.Printf("%s is now locked down.", c.name)
	c.printSensitiveInformation()
	c.env.log.Info(ctx, "lockdown engaged", logging.String("module", c.name))
	return true
}

func (c *ControlCenter) checkPassword(password string) bool {
	if len(password) > maxPasswordBytes || len(password) != c.codeLen {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.securityHash, []byte(password)) == nil
}

func (c *ControlCenter) printSensitiveInformation() {
	if !c.lockedDown {
		return
	}
	c.env.console.Println("This is sensitive information accessible only under lockdown.")
}
