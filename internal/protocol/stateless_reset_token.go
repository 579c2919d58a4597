package protocol

// A StatelessResetToken is a stateless reset token.
type StatelessResetToken [StatelessResetTokenLen]byte
